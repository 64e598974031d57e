package permission

import (
	"runtime"
	"testing"
)

func envWith(key, value string) LookupEnvFunc {
	return func(name string) (string, bool) {
		if name == key {
			return value, true
		}
		return "", false
	}
}

func envEmpty(string) (string, bool) { return "", false }

func TestProbeHonoursOverride(t *testing.T) {
	cases := []struct {
		value string
		want  Status
	}{
		{"granted", StatusGranted},
		{"TRUSTED", StatusGranted},
		{" yes ", StatusGranted},
		{"1", StatusGranted},
		{"denied", StatusDenied},
		{"false", StatusDenied},
		{"0", StatusDenied},
		{"prompt", StatusPromptRequired},
		{"ask", StatusPromptRequired},
		{"banana", StatusUnknown},
		{"", StatusUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got := Probe(envWith(envAccessibility, tc.value))
			if got.Status != tc.want {
				t.Fatalf("Probe(%q).Status = %q, want %q", tc.value, got.Status, tc.want)
			}
		})
	}
}

func TestProbeDeniedCarriesGuidance(t *testing.T) {
	result := Probe(envWith(envAccessibility, "denied"))
	if result.Guidance == "" {
		t.Fatalf("denied probe should tell the operator how to recover")
	}
}

func TestProbeWithoutOverride(t *testing.T) {
	result := Probe(envEmpty)
	if runtime.GOOS == "darwin" {
		if result.Status != StatusPromptRequired {
			t.Fatalf("status = %q, want prompt on darwin", result.Status)
		}
		if result.Guidance == "" {
			t.Fatalf("darwin prompt result should include guidance")
		}
		return
	}
	if result.Status != StatusGranted {
		t.Fatalf("status = %q, want granted off darwin", result.Status)
	}
}

func TestEnvGate(t *testing.T) {
	if NewEnvGate(envWith(envAccessibility, "denied")).Granted() {
		t.Fatalf("denied override must close the gate")
	}
	if !NewEnvGate(envWith(envAccessibility, "prompt")).Granted() {
		t.Fatalf("prompt-required must keep the gate open")
	}
	if !NewEnvGate(envWith(envAccessibility, "granted")).Granted() {
		t.Fatalf("granted override must open the gate")
	}
}

func TestStaticGate(t *testing.T) {
	if !StaticGate(true).Granted() || StaticGate(false).Granted() {
		t.Fatalf("StaticGate must report its fixed value")
	}
}
