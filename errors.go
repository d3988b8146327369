package goschemes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goschemes/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeNoConversion: the value is not a scheme, a scheme morphism, a
	// commutative ring or a morphism of rings.
	CodeNoConversion = "no_conversion"
	// CodeInvalidBase: a base argument normalized to something other than a scheme.
	CodeInvalidBase = "invalid_base"
	// Input-document passes (codec and CLI)
	CodeParseError  = "parse_error"
	CodeUnknownKind = "unknown_kind"
	CodeInvalidRing = "invalid_ring"
	// Missing collaborator (for example: no registry in context)
	CodeDependencyUnavailable = "dependency_unavailable"
)

// Issue represents a single failure entry.
type Issue struct {
	Path    string // Position of the offending item ("/" for single values, "/2" in batches).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"category": "...", "value": "..."})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. no_conversion at /: No way to create ...
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is reaches wrapped sentinel errors.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsCode reports whether err carries an Issue with the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	return ok && iss.HasCode(code)
}

// IssueAt creates an Issue at the given path with a localized message built
// from params.
func IssueAt(path, code string, params map[string]any) Issue {
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, data), Params: params}
}
