package kindred

import "context"

// Codec performs bidirectional transformation between the open mapping form
// used at the interop boundary and the domain representation T. Encode is the
// export direction and never fails for well-formed values; Decode and
// Validate are the import directions, with Validate additionally accepting
// values that are already native.
type Codec[T any] interface {
	Encode(ctx context.Context, v T) (Dict, error)
	Decode(ctx context.Context, m map[string]any) (T, error)
	Validate(ctx context.Context, v any) (T, error)
}

// PersonCodec returns the canonical Codec over Person, delegating to the
// package-level conversions. It exists so an external framework can hold the
// whole conversion contract as one value.
func PersonCodec() Codec[Person] { return personCodec{} }

type personCodec struct{}

func (personCodec) Encode(ctx context.Context, p Person) (Dict, error) {
	return p.Dict(), nil
}

func (personCodec) Decode(ctx context.Context, m map[string]any) (Person, error) {
	return FromMap(m)
}

func (personCodec) Validate(ctx context.Context, v any) (Person, error) {
	return Validate(ctx, v)
}
