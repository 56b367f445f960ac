package core

// AttributeType names the data type of an attribute.
type AttributeType string

// Attribute types commonly found in fixtures.
const (
	AttributeTypeString   AttributeType = "String"
	AttributeTypeMemo     AttributeType = "Memo"
	AttributeTypeInteger  AttributeType = "Integer"
	AttributeTypeDecimal  AttributeType = "Decimal"
	AttributeTypeDouble   AttributeType = "Double"
	AttributeTypeBoolean  AttributeType = "Boolean"
	AttributeTypeDateTime AttributeType = "DateTime"
	AttributeTypeLookup   AttributeType = "Lookup"
	AttributeTypePicklist AttributeType = "Picklist"
	AttributeTypeMoney    AttributeType = "Money"
	AttributeTypeState    AttributeType = "State"
	AttributeTypeStatus   AttributeType = "Status"
	AttributeTypeUniqueID AttributeType = "Uniqueidentifier"
	AttributeTypeParty    AttributeType = "PartyList"
)

// EntityMetadata describes an entity (table).
type EntityMetadata struct {
	LogicalName          string               `json:"logicalName" yaml:"logicalName"`
	SchemaName           string               `json:"schemaName,omitempty" yaml:"schemaName,omitempty"`
	DisplayName          string               `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	PrimaryIDAttribute   string               `json:"primaryIdAttribute,omitempty" yaml:"primaryIdAttribute,omitempty"`
	PrimaryNameAttribute string               `json:"primaryNameAttribute,omitempty" yaml:"primaryNameAttribute,omitempty"`
	ObjectTypeCode       int                  `json:"objectTypeCode,omitempty" yaml:"objectTypeCode,omitempty"`
	Attributes           []*AttributeMetadata `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Attribute returns the attribute metadata with the given logical name.
func (m *EntityMetadata) Attribute(logicalName string) (*AttributeMetadata, bool) {
	for _, a := range m.Attributes {
		if a.LogicalName == logicalName {
			return a, true
		}
	}
	return nil, false
}

// AttributeMetadata describes one attribute (column).
type AttributeMetadata struct {
	LogicalName       string        `json:"logicalName" yaml:"logicalName"`
	EntityLogicalName string        `json:"entityLogicalName,omitempty" yaml:"entityLogicalName,omitempty"`
	SchemaName        string        `json:"schemaName,omitempty" yaml:"schemaName,omitempty"`
	DisplayName       string        `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	AttributeType     AttributeType `json:"attributeType,omitempty" yaml:"attributeType,omitempty"`
	RequiredLevel     string        `json:"requiredLevel,omitempty" yaml:"requiredLevel,omitempty"`
	Targets           []string      `json:"targets,omitempty" yaml:"targets,omitempty"`
}
