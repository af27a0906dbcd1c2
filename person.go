package kindred

import (
	"fmt"
	"strings"
)

// Person is the native recursive entity: a name, an age, and an ordered
// sequence of children owned exclusively by their parent. Children are held
// by value, so appending copies the child into the parent and no two parents
// can share a node.
type Person struct {
	Name     string
	Age      int
	Children []Person
}

// New constructs a Person with the given name and age and no children.
func New(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// AddChild appends child to the end of the receiver's children sequence.
// The receiver becomes the sole owner of the appended copy.
//
// No cycle check is performed: keeping the tree finite and acyclic is a
// caller obligation. Appending a node to (a copy of) itself cannot create a
// cycle here because children are copied by value, but callers composing
// trees through pointers elsewhere must not make a node its own descendant.
func (p *Person) AddChild(child Person) {
	p.Children = append(p.Children, child)
}

// Equal reports whether two entities are structurally equal: same name, same
// age, and element-wise equal children in the same order, recursively.
func (p Person) Equal(q Person) bool {
	if p.Name != q.Name || p.Age != q.Age || len(p.Children) != len(q.Children) {
		return false
	}
	for i := range p.Children {
		if !p.Children[i].Equal(q.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the entity and its subtree.
func (p Person) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Person(name=%s, age=%d, children=[", p.Name, p.Age)
	for i := range p.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Children[i].String())
	}
	b.WriteString("])")
	return b.String()
}
