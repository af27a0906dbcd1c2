package kindred

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired         = "required"          // a required key is absent from the input mapping
	CodeInvalidType      = "invalid_type"      // key present but holding the wrong type
	CodeInvalidElement   = "invalid_element"   // a children element is not itself a mapping
	CodeUnsupportedInput = "unsupported_input" // Validate received neither a Person nor a mapping
	CodeParseError       = "parse_error"       // the underlying decoder rejected the input bytes
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the mapping (for example: /children/2/age).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"expected":"string", "actual":"int"})
	// for observability and message formatting.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// Import is fail-fast, so errors produced by this package carry exactly one
// Issue; the slice form keeps the model open for callers that aggregate.
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
		// e.g. invalid_type at /name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
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

// issueAt creates a single-Issue error at the given pointer path.
func issueAt(path, code, msg string, params map[string]any) error {
	return Issues{{Path: path, Code: code, Message: msg, Params: params}}
}

// prefixIssues rebases issue paths produced while importing a child onto the
// parent's pointer, so deep failures surface with their full location.
func prefixIssues(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		p := it.Path
		if p == "/" {
			p = ""
		}
		it.Path = prefix + p
		out[i] = it
	}
	return out
}

// childPath renders the pointer to the i-th element of children.
func childPath(i int) string {
	return "/children/" + strconv.Itoa(i)
}
