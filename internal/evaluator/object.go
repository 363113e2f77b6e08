// Package evaluator walks a Smython AST directly, without a bytecode
// compilation step. Values implement Object; control flow that needs to
// unwind past normal returns (break, continue, return, raise) is carried
// as the error half of Eval's (Object, error) result instead of folded
// into Object itself, the one place this tree walker departs from its
// single-return-value lineage.
package evaluator

import "fmt"

// ObjectType identifies the runtime kind of an Object.
type ObjectType string

const (
	NoneType     ObjectType = "NoneType"
	BoolType     ObjectType = "bool"
	IntType      ObjectType = "int"
	FloatType    ObjectType = "float"
	StrType      ObjectType = "str"
	TupleType    ObjectType = "tuple"
	ListType     ObjectType = "list"
	DictType     ObjectType = "dict"
	SetType      ObjectType = "set"
	FuncType     ObjectType = "function"
	BuiltinType  ObjectType = "builtin_function"
	BoundType    ObjectType = "bound_method"
	ClassType    ObjectType = "type"
	InstanceType ObjectType = "instance"
	ModuleType   ObjectType = "module"
)

// Object is implemented by every Smython runtime value.
type Object interface {
	Type() ObjectType
	String() string
	Truthy() bool
}

// hashKey is the comparable identity used to bucket a value as a Dict
// key or Set member: its ObjectType plus a type-appropriate scalar, so
// two Objects that are == compare equal as map keys regardless of
// pointer identity.
type hashKey struct {
	typ ObjectType
	val interface{}
}

// hashableKey returns the hashKey for obj, and false if obj's type
// cannot be used as a Dict key or Set member (List, Dict, Set, and
// anything else without value semantics).
func hashableKey(obj Object) (hashKey, bool) {
	switch v := obj.(type) {
	case *None:
		return hashKey{NoneType, nil}, true
	case *Bool:
		return hashKey{BoolType, v.Value}, true
	case *Int:
		return hashKey{IntType, v.Value}, true
	case *Float:
		// An integral float shares the Int key, since 1 == 1.0.
		if i := int64(v.Value); float64(i) == v.Value {
			return hashKey{IntType, i}, true
		}
		return hashKey{FloatType, v.Value}, true
	case *Str:
		return hashKey{StrType, v.Value}, true
	case *Tuple:
		parts := make([]interface{}, len(v.Elems))
		for i, e := range v.Elems {
			k, ok := hashableKey(e)
			if !ok {
				return hashKey{}, false
			}
			parts[i] = k
		}
		return hashKey{TupleType, fmt.Sprint(parts)}, true
	default:
		return hashKey{}, false
	}
}
