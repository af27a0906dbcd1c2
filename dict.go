package kindred

import (
	"encoding/json"
	"fmt"
	"math"
)

// Dict is the dictionary representation of a Person: the explicit three-field
// DTO exchanged with external validators and codecs. It mirrors the mapping
// shape {"name": <text>, "age": <integer>, "children": [<dict>, ...]} with the
// same recursion.
type Dict struct {
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	Children []Dict `json:"children" yaml:"children"`
}

// Dict exports the entity into its dictionary representation. Export is a
// pure function of the current state, recurses through every descendant, and
// always succeeds for a well-formed (finite, acyclic) entity.
func (p Person) Dict() Dict {
	d := Dict{Name: p.Name, Age: p.Age, Children: make([]Dict, len(p.Children))}
	for i := range p.Children {
		d.Children[i] = p.Children[i].Dict()
	}
	return d
}

// Map renders the DTO as an open mapping, the form external codecs consume.
// Children become a []any of nested mappings so the result looks exactly like
// what a generic decoder would have produced.
func (d Dict) Map() map[string]any {
	children := make([]any, len(d.Children))
	for i := range d.Children {
		children[i] = d.Children[i].Map()
	}
	return map[string]any{
		"name":     d.Name,
		"age":      d.Age,
		"children": children,
	}
}

// FromDict reconstructs a Person from the typed DTO. The DTO is already
// shape-checked by construction, so this direction cannot fail.
func FromDict(d Dict) Person {
	p := Person{Name: d.Name, Age: d.Age}
	if len(d.Children) > 0 {
		p.Children = make([]Person, len(d.Children))
		for i := range d.Children {
			p.Children[i] = FromDict(d.Children[i])
		}
	}
	return p
}

// FromMap reconstructs a Person from an untyped mapping, depth-first:
// name, then age, then children, preserving child order exactly. A missing
// children key is treated as an empty sequence. The import is fail-fast: the
// first issue anywhere in the descent aborts the whole reconstruction and no
// partially-built entity is returned.
func FromMap(m map[string]any) (Person, error) {
	var p Person

	nv, ok := m["name"]
	if !ok {
		return p, issueAt("/name", CodeRequired, "required key is missing", nil)
	}
	name, ok := nv.(string)
	if !ok {
		return p, issueAt("/name", CodeInvalidType, "expected string", typeParams("string", nv))
	}

	av, ok := m["age"]
	if !ok {
		return p, issueAt("/age", CodeRequired, "required key is missing", nil)
	}
	age, ok := intFromAny(av)
	if !ok {
		return p, issueAt("/age", CodeInvalidType, "expected integer", typeParams("integer", av))
	}

	p.Name = name
	p.Age = age

	cv, ok := m["children"]
	if !ok {
		return p, nil
	}
	seq, ok := cv.([]any)
	if !ok {
		return Person{}, issueAt("/children", CodeInvalidType, "expected array", typeParams("array", cv))
	}
	if len(seq) == 0 {
		return p, nil
	}
	p.Children = make([]Person, len(seq))
	for i, el := range seq {
		cm, ok := el.(map[string]any)
		if !ok {
			return Person{}, issueAt(childPath(i), CodeInvalidElement, "children element is not a mapping", typeParams("mapping", el))
		}
		child, err := FromMap(cm)
		if err != nil {
			return Person{}, prefixIssues(err, childPath(i))
		}
		p.Children[i] = child
	}
	return p, nil
}

func typeParams(expected string, got any) map[string]any {
	return map[string]any{"expected": expected, "actual": fmt.Sprintf("%T", got)}
}

// intFromAny accepts the integer encodings generic decoders produce: native
// Go ints, json.Number (go-json with UseNumber), and integral float64
// (encoding/json default number mode). Fractional or out-of-range values are
// rejected rather than truncated.
func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
