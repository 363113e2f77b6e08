package evaluator

// Class is a Smython class object: a name, an optional superclass, and
// a dict of members populated by evaluating the class body (so every
// `def` and top-level assignment inside `class X: ...` becomes one of
// these entries).
type Class struct {
	Name    string
	Super   *Class // nil if no superclass
	Members map[string]Object
}

// NewClass creates an empty class with the given name and superclass.
func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super, Members: make(map[string]Object)}
}

func (c *Class) Type() ObjectType { return ClassType }
func (c *Class) Truthy() bool     { return true }
func (c *Class) String() string   { return "<class '" + c.Name + "'>" }

// GetAttr looks up name in this class, then up the superclass chain.
func (c *Class) GetAttr(name string) (Object, bool) {
	if v, ok := c.Members[name]; ok {
		return v, true
	}
	if c.Super != nil {
		return c.Super.GetAttr(name)
	}
	return nil, false
}

// SetAttr writes name into this class's own members.
func (c *Class) SetAttr(name string, value Object) {
	c.Members[name] = value
}

// Instance is an object constructed by calling a Class.
type Instance struct {
	Class *Class
	Attrs map[string]Object
}

// NewInstance creates an instance of class with an empty attribute dict.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Attrs: make(map[string]Object)}
}

func (i *Instance) Type() ObjectType { return InstanceType }
func (i *Instance) Truthy() bool     { return true }
func (i *Instance) String() string   { return "<" + i.Class.Name + " instance>" }

// GetAttr checks the instance's own dict, then the class chain,
// wrapping any Func found on the class as a BoundMethod.
func (i *Instance) GetAttr(name string) (Object, bool) {
	if v, ok := i.Attrs[name]; ok {
		return v, true
	}
	if v, ok := i.Class.GetAttr(name); ok {
		if fn, ok := v.(*Func); ok {
			return &BoundMethod{Receiver: i, Func: fn}, true
		}
		return v, true
	}
	return nil, false
}

// SetAttr writes name into the instance's own dict.
func (i *Instance) SetAttr(name string, value Object) {
	i.Attrs[name] = value
}
