package core

// TargetParameter is the input parameter key carrying the primary record of a
// Create / Update / Delete message.
const TargetParameter = "Target"

// ParameterCollection is a named bag of values: request inputs, response
// results, plugin input/output parameters and shared variables.
type ParameterCollection map[string]any

// Get returns the value and whether the key was present.
func (p ParameterCollection) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Contains reports whether the key is present.
func (p ParameterCollection) Contains(key string) bool {
	_, ok := p[key]
	return ok
}

// Entity returns the value under key when it is an *Entity.
func (p ParameterCollection) Entity(key string) (*Entity, bool) {
	e, ok := p[key].(*Entity)
	return e, ok && e != nil
}

// EntityReference returns the value under key when it is an EntityReference.
func (p ParameterCollection) EntityReference(key string) (EntityReference, bool) {
	ref, ok := p[key].(EntityReference)
	return ref, ok
}

// EntityImageCollection holds pre/post images registered on a plugin step,
// keyed by image alias.
type EntityImageCollection map[string]*Entity
