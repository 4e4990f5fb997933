package interp

import (
	"fmt"

	"github.com/cwbudde/go-lbpl/internal/value"
)

// Class is the runtime representation of a class statement (spec.md
// §3.4): a name, an optional shared superclass, and a name→method map.
// It acts as a Callable whose invocation constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class // nil for a root class
	Methods    map[string]*UserFunction
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return "<class " + c.Name + ">" }

// findMethod walks the class chain outward (self, then superclass, and
// so on), returning the first match -- this is dynamic dispatch for
// method lookup (spec.md §4.4 "Method binding").
func (c *Class) findMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's `init` method, or 0 if it declares
// none (spec.md §3.4).
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance, binds `init` (if any) to it, and
// invokes it (spec.md §4.4 "Function call" step 4).
func (c *Class) Call(interp *Interpreter, args []value.Value) (value.Value, error) {
	inst := &Instance{Class: c, Fields: make(map[string]value.Value)}
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(inst).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Instance is a live object: a pointer to its class and a mutable field
// map, created lazily on first assignment (spec.md §3.5).
type Instance struct {
	Class  *Class
	Fields map[string]value.Value
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return "<" + i.Class.Name + " instance>" }

// Get implements GetField on an instance: a field wins over a method of
// the same name; a found method is bound fresh to this instance before
// being returned (spec.md §4.4 "Method binding"). Reading an undefined
// field that is also not a method is a runtime error.
func (i *Instance) Get(name string) (value.Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if m, ok := i.Class.findMethod(name); ok {
		return m.bind(i), nil
	}
	return nil, fmt.Errorf("Undefined field '%s' on instance of '%s'", name, i.Class.Name)
}

// Set writes a field, creating it on first assignment (spec.md §3.5).
func (i *Instance) Set(name string, v value.Value) {
	i.Fields[name] = v
}
