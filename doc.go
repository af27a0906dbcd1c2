package kindred

// Package kindred provides:
//
// - A recursive, strongly-typed Person entity with exclusive parent-to-child ownership
// - A bidirectional conversion contract between Person and its dictionary form (Dict / map[string]any)
// - A validation dispatch that accepts native entities and raw mappings through one entry point
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the wire boundary under wire/ and the tree generator under gen/.
// - Import is fail-fast: the first issue found anywhere in the recursive descent aborts the whole reconstruction.
// - Export never fails for a well-formed entity; Import allocates a fresh tree and never aliases its input.
//
// Typical usage:
//
//	p := kindred.New("Alice", 30)
//	p.AddChild(kindred.New("Bob", 5))
//
//	d := p.Dict()                            // export
//	q, err := kindred.Validate(ctx, d.Map()) // import via dispatch
//
//	data, err := wire.MarshalJSON(d)         // hand off to an external codec
//	q, err = wire.PersonFromJSON(ctx, data)  // and back
