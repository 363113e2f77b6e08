package evaluator

// Module is a namespace produced either by the virtual built-in module
// table or by loading and evaluating a `.smy` file into a fresh set of
// globals.
type Module struct {
	Name    string
	Globals map[string]Object
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name, Globals: make(map[string]Object)}
}

func (m *Module) Type() ObjectType { return ModuleType }
func (m *Module) Truthy() bool     { return true }
func (m *Module) String() string   { return "<module '" + m.Name + "'>" }

// GetAttr looks up name among the module's top-level bindings.
func (m *Module) GetAttr(name string) (Object, bool) {
	v, ok := m.Globals[name]
	return v, ok
}

// SetAttr installs or overwrites a top-level binding.
func (m *Module) SetAttr(name string, value Object) {
	m.Globals[name] = value
}
