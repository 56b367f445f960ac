package core

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityReference points at another record (a lookup value).
type EntityReference struct {
	LogicalName string    `json:"logicalName" yaml:"logicalName"`
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name,omitempty" yaml:"name,omitempty"`
}

// NewEntityReference creates a reference without a display name.
func NewEntityReference(logicalName string, id uuid.UUID) EntityReference {
	return EntityReference{LogicalName: logicalName, ID: id}
}

// EntityReferenceCollection is an ordered list of references, used by
// Associate / Disassociate.
type EntityReferenceCollection []EntityReference

// Relationship names an N:N or 1:N relationship by schema name.
type Relationship struct {
	SchemaName string `json:"schemaName" yaml:"schemaName"`
}

// OptionSetValue is the integer code of a picklist choice.
type OptionSetValue struct {
	Value int `json:"value" yaml:"value"`
}

// NewOptionSetValue wraps an option code.
func NewOptionSetValue(v int) OptionSetValue { return OptionSetValue{Value: v} }

// Money is a currency amount. Decimal arithmetic keeps fixture amounts exact.
type Money struct {
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// NewMoney creates a currency amount from a float.
func NewMoney(v float64) Money { return Money{Value: decimal.NewFromFloat(v)} }

// NewMoneyFromString parses a decimal literal such as "1250.75".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

// Equal reports whether both amounts are numerically equal.
func (m Money) Equal(o Money) bool { return m.Value.Equal(o.Value) }

// String returns the amount without trailing zeros.
func (m Money) String() string { return m.Value.String() }

// AliasedValue is an attribute value projected from a linked entity.
type AliasedValue struct {
	EntityLogicalName    string `json:"entityLogicalName" yaml:"entityLogicalName"`
	AttributeLogicalName string `json:"attributeLogicalName" yaml:"attributeLogicalName"`
	Value                any    `json:"value" yaml:"value"`
}

// EntityCollection is a set of records returned by RetrieveMultiple or
// stored as a nested attribute value (activity parties, for instance).
type EntityCollection struct {
	EntityName  string    `json:"entityName,omitempty" yaml:"entityName,omitempty"`
	Entities    []*Entity `json:"entities" yaml:"entities"`
	MoreRecords bool      `json:"moreRecords,omitempty" yaml:"moreRecords,omitempty"`
}

// NewEntityCollection wraps the given entities.
func NewEntityCollection(entities ...*Entity) *EntityCollection {
	if entities == nil {
		entities = []*Entity{}
	}
	return &EntityCollection{Entities: entities}
}

// Len returns the number of entities in the collection.
func (c *EntityCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entities)
}

// Clone deep copies the collection and its entities.
func (c *EntityCollection) Clone() *EntityCollection {
	if c == nil {
		return nil
	}
	out := &EntityCollection{EntityName: c.EntityName, MoreRecords: c.MoreRecords, Entities: make([]*Entity, len(c.Entities))}
	for i, e := range c.Entities {
		out.Entities[i] = e.Clone()
	}
	return out
}

// ColumnSet selects the attributes returned by a retrieve.
type ColumnSet struct {
	AllColumns bool     `json:"allColumns" yaml:"allColumns"`
	Columns    []string `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// NewColumnSet selects the named columns.
func NewColumnSet(columns ...string) ColumnSet {
	return ColumnSet{Columns: append([]string{}, columns...)}
}

// AllColumnsSet selects every column.
func AllColumnsSet() ColumnSet { return ColumnSet{AllColumns: true} }
