package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Cfg struct {
	Logger  Logger
	Browser Browser
	Inject  Inject
}

type Logger struct {
	Level  string
	Pretty bool
}

// Browser extends the static extraction policy lists.
type Browser struct {
	ExtraBundleIDs      []string
	ExtraActionKeywords []string
}

type Inject struct {
	CDPEndpoint string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		Logger: Logger{
			Level:  env("LOG_LEVEL", "info"),
			Pretty: envBool("LOG_PRETTY", true),
		},
		Browser: Browser{
			ExtraBundleIDs:      envList("MACOSUSE_BROWSER_BUNDLES"),
			ExtraActionKeywords: envList("MACOSUSE_ACTION_KEYWORDS"),
		},
		Inject: Inject{
			CDPEndpoint: env("MACOSUSE_CDP_ENDPOINT", "http://127.0.0.1:9222"),
		},
	}
	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

// envList splits a comma-separated variable, dropping blanks.
func envList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
