package core

import (
	"sort"

	"github.com/google/uuid"
)

// Entity is a single CRM record: a logical name (the table), an id and a bag
// of attribute values. Attribute values are one of EntityReference,
// OptionSetValue, *EntityCollection, Money, AliasedValue or a plain scalar.
//
// FormattedValues holds display labels keyed by attribute name, as returned by
// the platform for option sets and lookups.
type Entity struct {
	LogicalName     string            `json:"logicalName" yaml:"logicalName"`
	ID              uuid.UUID         `json:"id" yaml:"id"`
	Attributes      map[string]any    `json:"attributes" yaml:"attributes"`
	FormattedValues map[string]string `json:"formattedValues,omitempty" yaml:"formattedValues,omitempty"`
}

// NewEntity creates an empty entity of the given logical name with a nil id.
func NewEntity(logicalName string) *Entity {
	return NewEntityWithID(logicalName, uuid.Nil)
}

// NewEntityWithID creates an empty entity with an explicit id.
func NewEntityWithID(logicalName string, id uuid.UUID) *Entity {
	return &Entity{
		LogicalName:     logicalName,
		ID:              id,
		Attributes:      map[string]any{},
		FormattedValues: map[string]string{},
	}
}

// Get returns the attribute value and whether it was present.
func (e *Entity) Get(key string) (any, bool) {
	if e == nil || e.Attributes == nil {
		return nil, false
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// Set stores an attribute value, allocating the attribute map lazily.
func (e *Entity) Set(key string, value any) {
	if e.Attributes == nil {
		e.Attributes = map[string]any{}
	}
	e.Attributes[key] = value
}

// Contains reports whether the attribute is present (even when its value is nil).
func (e *Entity) Contains(key string) bool {
	_, ok := e.Get(key)
	return ok
}

// Keys returns the attribute names in lexical order.
func (e *Entity) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormattedValue returns the display label recorded for an attribute.
func (e *Entity) FormattedValue(key string) string {
	if e == nil || e.FormattedValues == nil {
		return ""
	}
	return e.FormattedValues[key]
}

// ToReference returns a reference pointing at this entity.
func (e *Entity) ToReference() EntityReference {
	return EntityReference{LogicalName: e.LogicalName, ID: e.ID}
}

// Clone returns a deep copy. Nested entity collections are cloned recursively;
// scalar attribute values are copied by value.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := &Entity{
		LogicalName:     e.LogicalName,
		ID:              e.ID,
		Attributes:      make(map[string]any, len(e.Attributes)),
		FormattedValues: make(map[string]string, len(e.FormattedValues)),
	}
	for k, v := range e.Attributes {
		c.Attributes[k] = cloneValue(v)
	}
	for k, v := range e.FormattedValues {
		c.FormattedValues[k] = v
	}
	return c
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case *EntityCollection:
		return tv.Clone()
	case *Entity:
		return tv.Clone()
	case AliasedValue:
		tv.Value = cloneValue(tv.Value)
		return tv
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
