// Package permission gates traversals on accessibility access. The real
// trust check lives in the platform binding; this package interprets
// explicit overrides and platform defaults the same way for every backend.
package permission

import (
	"os"
	"runtime"
	"strings"
)

// Status is the coarse permission state for the accessibility surface.
type Status string

const (
	StatusUnknown        Status = "unknown"
	StatusGranted        Status = "granted"
	StatusDenied         Status = "denied"
	StatusPromptRequired Status = "prompt"
)

// envAccessibility overrides the probed state, mainly for CI and tests.
const envAccessibility = "MACOSUSE_ACCESSIBILITY"

// ProbeResult carries the probed state plus operator guidance.
type ProbeResult struct {
	Status   Status
	Message  string
	Guidance string
}

// LookupEnvFunc exposes environment probing for testability.
type LookupEnvFunc func(string) (string, bool)

// Probe inspects the execution environment for accessibility trust.
func Probe(lookup LookupEnvFunc) ProbeResult {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(envAccessibility); ok {
		return interpretFlag(value)
	}
	if runtime.GOOS == "darwin" {
		return ProbeResult{
			Status:   StatusPromptRequired,
			Message:  "accessibility trust required",
			Guidance: "grant access in System Settings > Privacy & Security > Accessibility",
		}
	}
	// Non-darwin hosts have no accessibility TCC; nothing to deny.
	return ProbeResult{Status: StatusGranted, Message: "no accessibility gate on this platform"}
}

func interpretFlag(value string) ProbeResult {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "granted", "trusted", "allow", "allowed", "yes", "true", "1":
		return ProbeResult{Status: StatusGranted, Message: "accessibility pre-authorised via env override"}
	case "denied", "no", "false", "0", "blocked":
		return ProbeResult{
			Status:   StatusDenied,
			Message:  "accessibility denied via env override",
			Guidance: "unset " + envAccessibility + " or set it to granted",
		}
	case "prompt", "ask":
		return ProbeResult{Status: StatusPromptRequired, Message: "accessibility will prompt at runtime"}
	default:
		return ProbeResult{Status: StatusUnknown, Message: "accessibility state unknown"}
	}
}

// EnvGate satisfies the engine's PermissionGate using Probe. Prompt-required
// counts as granted: the platform will surface its own prompt on first AX
// call, and the traversal should attempt it.
type EnvGate struct {
	lookup LookupEnvFunc
}

func NewEnvGate(lookup LookupEnvFunc) *EnvGate {
	return &EnvGate{lookup: lookup}
}

func (g *EnvGate) Granted() bool {
	return Probe(g.lookup).Status != StatusDenied
}

// StaticGate is a fixed answer, for wiring tests and embedders that resolve
// permission themselves.
type StaticGate bool

func (s StaticGate) Granted() bool { return bool(s) }
