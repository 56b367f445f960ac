package testutil

import "github.com/hupe1980/xrmtesting/core"

// EntityMetadataBuilder constructs entity metadata with attributes.
// Example:
//
//	md := NewEntityMetadataBuilder("account").PrimaryID("accountid").Attribute("name", core.AttributeTypeString).Build()
type EntityMetadataBuilder struct {
	md *core.EntityMetadata
}

// NewEntityMetadataBuilder creates a builder for the given logical name.
func NewEntityMetadataBuilder(logicalName string) *EntityMetadataBuilder {
	return &EntityMetadataBuilder{md: &core.EntityMetadata{LogicalName: logicalName}}
}

// PrimaryID sets the primary id attribute name (chainable).
func (b *EntityMetadataBuilder) PrimaryID(name string) *EntityMetadataBuilder {
	b.md.PrimaryIDAttribute = name
	return b
}

// PrimaryName sets the primary name attribute (chainable).
func (b *EntityMetadataBuilder) PrimaryName(name string) *EntityMetadataBuilder {
	b.md.PrimaryNameAttribute = name
	return b
}

// Attribute appends attribute metadata owned by this entity (chainable).
func (b *EntityMetadataBuilder) Attribute(logicalName string, t core.AttributeType) *EntityMetadataBuilder {
	b.md.Attributes = append(b.md.Attributes, &core.AttributeMetadata{
		LogicalName:       logicalName,
		EntityLogicalName: b.md.LogicalName,
		AttributeType:     t,
	})
	return b
}

// Build returns the metadata.
func (b *EntityMetadataBuilder) Build() *core.EntityMetadata { return b.md }
