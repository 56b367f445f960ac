package testutil

import (
	"github.com/google/uuid"

	"github.com/hupe1980/xrmtesting/core"
)

// EntityBuilder helps construct records with fluent chaining for tests.
// Example:
//
//	acc := NewEntityBuilder("account").WithNewID().Attr("name", "Contoso").Option("statuscode", 1, "Active").Build()
type EntityBuilder struct {
	e *core.Entity
}

// NewEntityBuilder creates a builder for a record of the given logical name
// with a nil id.
func NewEntityBuilder(logicalName string) *EntityBuilder {
	return &EntityBuilder{e: core.NewEntity(logicalName)}
}

// ID sets the record id (chainable).
func (b *EntityBuilder) ID(id uuid.UUID) *EntityBuilder { b.e.ID = id; return b }

// WithNewID assigns a random id (chainable).
func (b *EntityBuilder) WithNewID() *EntityBuilder { b.e.ID = uuid.New(); return b }

// Attr sets a plain attribute value (chainable).
func (b *EntityBuilder) Attr(key string, v any) *EntityBuilder { b.e.Set(key, v); return b }

// Ref sets a lookup attribute (chainable).
func (b *EntityBuilder) Ref(key, logicalName string, id uuid.UUID, name string) *EntityBuilder {
	b.e.Set(key, core.EntityReference{LogicalName: logicalName, ID: id, Name: name})
	return b
}

// Option sets an option set attribute and, when label is non-empty, its
// formatted value (chainable).
func (b *EntityBuilder) Option(key string, value int, label string) *EntityBuilder {
	b.e.Set(key, core.NewOptionSetValue(value))
	if label != "" {
		b.e.FormattedValues[key] = label
	}
	return b
}

// Money sets a currency attribute (chainable).
func (b *EntityBuilder) Money(key string, amount float64) *EntityBuilder {
	b.e.Set(key, core.NewMoney(amount))
	return b
}

// Build returns the record. The builder must not be reused afterwards.
func (b *EntityBuilder) Build() *core.Entity { return b.e }
