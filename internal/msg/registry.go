package msg

import "fmt"

// Type is the immutable identity of a message class. Instances are created
// only through Registry.Register and live for the process duration.
type Type struct {
	Level Level
	Code  int
	Name  string
}

// String renders the textual identity used in output lines.
func (t *Type) String() string {
	return fmt.Sprintf("%c-%04d:%s", t.Level.Letter(), t.Code, t.Name)
}

// DuplicateNameError reports a registration whose name collides with an
// already registered type.
type DuplicateNameError struct {
	Name     string
	Existing *Type
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("message type name %q already in use by %s", e.Name, e.Existing)
}

// DuplicateCodeError reports a registration whose code collides with an
// already registered type.
type DuplicateCodeError struct {
	Code     int
	Existing *Type
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("message type code %d already in use by %s", e.Code, e.Existing)
}

// NotFoundError reports a lookup for an unregistered name or code.
type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no message type registered for %v", e.Key)
}

// Registry is the shared catalog of message types. It is populated during an
// explicit initialization phase before analysis begins and is read-only
// afterwards; there is no deletion.
type Registry struct {
	byName map[string]*Type
	byCode map[int]*Type
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Type),
		byCode: make(map[int]*Type),
	}
}

// Register creates a new message type. A colliding name or code fails before
// any registry state is mutated, reporting the existing type in the error.
func (r *Registry) Register(level Level, code int, name string) (*Type, error) {
	if existing, ok := r.byName[name]; ok {
		return nil, &DuplicateNameError{Name: name, Existing: existing}
	}
	if existing, ok := r.byCode[code]; ok {
		return nil, &DuplicateCodeError{Code: code, Existing: existing}
	}
	t := &Type{Level: level, Code: code, Name: name}
	r.byName[name] = t
	r.byCode[code] = t
	return t, nil
}

// MustRegister is Register for the start-up phase, where a conflict is a
// programming defect in the check set.
func (r *Registry) MustRegister(level Level, code int, name string) *Type {
	t, err := r.Register(level, code, name)
	if err != nil {
		panic(err)
	}
	return t
}

// ByName returns the type registered under name.
func (r *Registry) ByName(name string) (*Type, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, &NotFoundError{Key: name}
	}
	return t, nil
}

// ByCode returns the type registered under code.
func (r *Registry) ByCode(code int) (*Type, error) {
	t, ok := r.byCode[code]
	if !ok {
		return nil, &NotFoundError{Key: code}
	}
	return t, nil
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.byName)
}
