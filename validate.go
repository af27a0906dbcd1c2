package kindred

import (
	"context"
	"fmt"
)

// inputKind tags the variants Validate dispatches on, decided once up front
// rather than re-inspecting the value along the way.
type inputKind int

const (
	inputNative inputKind = iota
	inputNativePtr
	inputDict
	inputMapping
	inputOther
)

func classify(v any) inputKind {
	switch v.(type) {
	case Person:
		return inputNative
	case *Person:
		return inputNativePtr
	case Dict:
		return inputDict
	case map[string]any:
		return inputMapping
	default:
		return inputOther
	}
}

// Validate is the single normalization entry point used by validation
// frameworks: it accepts either an already-native Person (returned unchanged,
// so the call is idempotent) or a mapping in the dictionary shape (delegated
// to FromMap). Anything else fails with an unsupported_input issue naming the
// actual type. The ctx parameter mirrors the usual parse entry points; the
// work itself is pure and never blocks.
func Validate(ctx context.Context, v any) (Person, error) {
	switch classify(v) {
	case inputNative:
		return v.(Person), nil
	case inputNativePtr:
		if p := v.(*Person); p != nil {
			return *p, nil
		}
		return Person{}, issueAt("/", CodeUnsupportedInput, "cannot convert nil *kindred.Person to Person", nil)
	case inputDict:
		return FromDict(v.(Dict)), nil
	case inputMapping:
		return FromMap(v.(map[string]any))
	default:
		return Person{}, issueAt("/", CodeUnsupportedInput,
			fmt.Sprintf("cannot convert %T to Person", v),
			map[string]any{"actual": fmt.Sprintf("%T", v)})
	}
}
