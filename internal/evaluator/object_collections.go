package evaluator

import "strings"

// repr renders obj the way it would appear nested inside a container
// literal: strings get quoted, scalars otherwise match String().
func repr(obj Object) string {
	if s, ok := obj.(*Str); ok {
		return "'" + s.Value + "'"
	}
	return obj.String()
}

// Repr renders obj the way a REPL echoes an expression result: quoted
// for strings, String() for everything else. This is repr(), not
// str() — print() uses String() directly and never quotes.
func Repr(obj Object) string { return repr(obj) }

func joinRepr(elems []Object) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = repr(e)
	}
	return strings.Join(parts, ", ")
}

// Tuple is an immutable fixed-size sequence.
type Tuple struct{ Elems []Object }

func (t *Tuple) Type() ObjectType { return TupleType }
func (t *Tuple) Truthy() bool     { return len(t.Elems) > 0 }
func (t *Tuple) String() string {
	if len(t.Elems) == 1 {
		return "(" + repr(t.Elems[0]) + ",)"
	}
	return "(" + joinRepr(t.Elems) + ")"
}

// List is a mutable sequence.
type List struct{ Elems []Object }

func (l *List) Type() ObjectType { return ListType }
func (l *List) Truthy() bool     { return len(l.Elems) > 0 }
func (l *List) String() string   { return "[" + joinRepr(l.Elems) + "]" }

// dictEntry keeps the original key Object alongside its value so
// iteration can hand back the real key, not just its hashKey.
type dictEntry struct {
	key Object
	val Object
}

// Dict is an insertion-ordered mapping from hashable keys to values.
type Dict struct {
	order   []hashKey
	entries map[hashKey]dictEntry
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{entries: make(map[hashKey]dictEntry)}
}

func (d *Dict) Type() ObjectType { return DictType }
func (d *Dict) Truthy() bool     { return len(d.order) > 0 }
func (d *Dict) String() string {
	parts := make([]string, len(d.order))
	for i, k := range d.order {
		e := d.entries[k]
		parts[i] = repr(e.key) + ": " + repr(e.val)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get returns the value stored for key, and whether it was present.
func (d *Dict) Get(key Object) (Object, bool) {
	hk, ok := hashableKey(key)
	if !ok {
		return nil, false
	}
	e, ok := d.entries[hk]
	if !ok {
		return nil, false
	}
	return e.val, true
}

// Set stores value under key, preserving first-insertion order.
func (d *Dict) Set(key, value Object) bool {
	hk, ok := hashableKey(key)
	if !ok {
		return false
	}
	if _, exists := d.entries[hk]; !exists {
		d.order = append(d.order, hk)
	}
	d.entries[hk] = dictEntry{key: key, val: value}
	return true
}

// Delete removes key, reporting whether it was present.
func (d *Dict) Delete(key Object) bool {
	hk, ok := hashableKey(key)
	if !ok {
		return false
	}
	if _, exists := d.entries[hk]; !exists {
		return false
	}
	delete(d.entries, hk)
	for i, k := range d.order {
		if k == hk {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

func (d *Dict) Len() int { return len(d.order) }

// Items returns the (key, value) pairs in insertion order.
func (d *Dict) Items() [][2]Object {
	items := make([][2]Object, len(d.order))
	for i, k := range d.order {
		e := d.entries[k]
		items[i] = [2]Object{e.key, e.val}
	}
	return items
}

// Set is an insertion-ordered collection of unique hashable members.
type Set struct {
	order   []hashKey
	members map[hashKey]Object
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[hashKey]Object)}
}

func (s *Set) Type() ObjectType { return SetType }
func (s *Set) Truthy() bool     { return len(s.order) > 0 }
func (s *Set) String() string {
	if len(s.order) == 0 {
		return "set()"
	}
	parts := make([]string, len(s.order))
	for i, k := range s.order {
		parts[i] = repr(s.members[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Add inserts member if not already present, reporting whether it was
// newly added.
func (s *Set) Add(member Object) bool {
	hk, ok := hashableKey(member)
	if !ok {
		return false
	}
	if _, exists := s.members[hk]; exists {
		return false
	}
	s.order = append(s.order, hk)
	s.members[hk] = member
	return true
}

// Contains reports whether member is in the set.
func (s *Set) Contains(member Object) bool {
	hk, ok := hashableKey(member)
	if !ok {
		return false
	}
	_, exists := s.members[hk]
	return exists
}

func (s *Set) Len() int { return len(s.order) }

// Elems returns the members in insertion order.
func (s *Set) Elems() []Object {
	out := make([]Object, len(s.order))
	for i, k := range s.order {
		out[i] = s.members[k]
	}
	return out
}

// ShallowCopy implements the `copy` module's copy(): a fresh top-level
// List/Dict/Set with the same elements, or the value itself for kinds
// that are already immutable or carry reference identity.
func ShallowCopy(obj Object) Object {
	switch v := obj.(type) {
	case *List:
		elems := make([]Object, len(v.Elems))
		copy(elems, v.Elems)
		return &List{Elems: elems}
	case *Dict:
		d := NewDict()
		for _, kv := range v.Items() {
			d.Set(kv[0], kv[1])
		}
		return d
	case *Set:
		s := NewSet()
		for _, e := range v.Elems() {
			s.Add(e)
		}
		return s
	default:
		return obj
	}
}
