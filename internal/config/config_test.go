package config

import "testing"

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "")
	if got := env("CFG_TEST_STR", "fallback"); got != "fallback" {
		t.Fatalf("env() = %q, want fallback", got)
	}
	t.Setenv("CFG_TEST_STR", "set")
	if got := env("CFG_TEST_STR", "fallback"); got != "set" {
		t.Fatalf("env() = %q, want set", got)
	}
}

func TestEnvBool(t *testing.T) {
	cases := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"TRUE", false, true},
		{"on", false, true},
		{"0", true, false},
		{"no", true, false},
		{"gibberish", true, true},
	}
	for _, tc := range cases {
		t.Setenv("CFG_TEST_BOOL", tc.value)
		if got := envBool("CFG_TEST_BOOL", tc.def); got != tc.want {
			t.Fatalf("envBool(%q, %v) = %v, want %v", tc.value, tc.def, got, tc.want)
		}
	}
}

func TestEnvList(t *testing.T) {
	t.Setenv("CFG_TEST_LIST", " a, ,b ,, c ")
	got := envList("CFG_TEST_LIST")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("envList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("envList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CFG_TEST_LIST", "   ")
	if got := envList("CFG_TEST_LIST"); got != nil {
		t.Fatalf("blank variable should yield nil, got %v", got)
	}
}
