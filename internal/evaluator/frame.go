package evaluator

// Frame is the lexical scope an Eval call runs against: a parent link
// for nested function/class bodies, a locals map for this scope's own
// bindings, and globals/builtins maps shared by every frame in one
// execution. Unlike the teacher's Environment, Frame has no mutex —
// Smython has no concurrent evaluation, so there is nothing to guard.
type Frame struct {
	parent      *Frame
	locals      map[string]Object
	globals     map[string]Object
	builtins    map[string]Object
	globalNames map[string]bool // names declared `global` in this frame
	importer    ModuleImporter
}

// ModuleImporter is implemented by the owning runtime so a frame can
// resolve `import`/`from ... import` without the evaluator package
// depending on internal/runtime.
type ModuleImporter interface {
	ImportModule(name string) (*Module, error)
}

// NewGlobalFrame creates the top-level frame for one execution: locals
// and globals are the same map, so top-level assignments are globals.
func NewGlobalFrame(builtins map[string]Object, importer ModuleImporter) *Frame {
	globals := make(map[string]Object)
	return &Frame{locals: globals, globals: globals, builtins: builtins, importer: importer}
}

// NewModuleFrame builds a top-level frame over a caller-owned globals
// map, the way a loaded `.smy` file's statements need to run directly
// against its eventual Module.Globals rather than a throwaway map.
func NewModuleFrame(globals, builtins map[string]Object, importer ModuleImporter) *Frame {
	return &Frame{locals: globals, globals: globals, builtins: builtins, importer: importer}
}

// NewChildFrame creates a frame for a function call or class body,
// with its own locals but the same globals/builtins/importer as parent.
func NewChildFrame(parent *Frame) *Frame {
	return &Frame{
		parent:   parent,
		locals:   make(map[string]Object),
		globals:  parent.globals,
		builtins: parent.builtins,
		importer: parent.importer,
	}
}

// Lookup resolves name through locals, the parent chain, globals, then
// builtins, in that order, per §3.5.
func (f *Frame) Lookup(name string) (Object, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if v, ok := fr.locals[name]; ok {
			return v, true
		}
	}
	if v, ok := f.globals[name]; ok {
		return v, true
	}
	if v, ok := f.builtins[name]; ok {
		return v, true
	}
	return nil, false
}

// Bind creates or overwrites name in this frame's own locals,
// regardless of where it may already exist up the chain. Used for
// `def`/`class`/parameter binding and except-clause capture names;
// plain `x = value` assignment goes through Set below instead.
func (f *Frame) Bind(name string, value Object) {
	if f.globalNames != nil && f.globalNames[name] {
		f.globals[name] = value
		return
	}
	f.locals[name] = value
}

// Set walks the parent chain looking for a frame whose locals already
// contain name, writing there; if none does, it writes to this frame's
// own locals (identical to Bind in that case). This is the scope rule
// used by plain assignment: `x = 1` inside a function that never
// declared `x` local creates a new local, but a name already bound in
// an enclosing scope is overwritten there instead of shadowed.
func (f *Frame) Set(name string, value Object) {
	if f.globalNames != nil && f.globalNames[name] {
		f.globals[name] = value
		return
	}
	for fr := f; fr != nil; fr = fr.parent {
		if _, ok := fr.locals[name]; ok {
			fr.locals[name] = value
			return
		}
	}
	f.locals[name] = value
}

// MarkGlobal records that name, when assigned in this frame, routes to
// globals instead of locals, implementing the `global` statement.
func (f *Frame) MarkGlobal(name string) {
	if f.globalNames == nil {
		f.globalNames = make(map[string]bool)
	}
	f.globalNames[name] = true
}
