package ax

import (
	"errors"
	"fmt"
)

// Fatal errors. Only these two abort a traversal; everything on the browser
// extraction path degrades to partial data instead.
var (
	ErrPermissionDenied = errors.New("accessibility permission denied")
	ErrTargetNotFound   = errors.New("target application not found")

	// ErrInternal marks invariant violations inside the engine itself. It
	// should not surface under a well-behaved Provider.
	ErrInternal = errors.New("internal traversal error")
)

// ScriptError reports that the script-injection call against the host
// application failed outright (host scripting error or timeout). Non-fatal:
// the caller keeps whatever page data it already has.
type ScriptError struct {
	Err error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script injection failed: %v", e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// ParseError reports that the injected script ran but returned a result the
// engine could not decode. Non-fatal, same degradation as ScriptError.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script result parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
