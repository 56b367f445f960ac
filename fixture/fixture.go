// Package fixture loads organization data for the fake services from YAML.
//
// A fixture document lists records and metadata:
//
//	entityMetadata:
//	  - logicalName: account
//	    primaryIdAttribute: accountid
//	attributeMetadata:
//	  - logicalName: name
//	    entityLogicalName: account
//	    attributeType: String
//	entities:
//	  - logicalName: account
//	    id: 6f1c1a52-6f43-4b0e-9d43-2a1b0b6d1f11
//	    attributes:
//	      name: Contoso
//	      revenue: {money: "1250.75"}
//	      statuscode: {option: 1}
//	      primarycontactid:
//	        reference: {logicalName: contact, id: 0c3bcbf0-2d4e-4a55-8b1a-7a3d0e9f1a22, name: John}
//	    formattedValues:
//	      statuscode: Active
//
// Plain scalars decode to their YAML type. Typed values use a single-key
// mapping: reference, option, money, collection, aliased or guid.
package fixture

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/xrmtesting/core"
)

// Seeder receives fixture data. organization.FakeService implements it.
type Seeder interface {
	AddEntities(entities ...*core.Entity)
	AddEntityMetadata(md ...*core.EntityMetadata)
	AddAttributeMetadata(md ...*core.AttributeMetadata)
}

// Fixture is a decoded fixture document.
type Fixture struct {
	Entities          []*core.Entity
	EntityMetadata    []*core.EntityMetadata
	AttributeMetadata []*core.AttributeMetadata
}

type document struct {
	Entities          []entityDoc               `yaml:"entities"`
	EntityMetadata    []*core.EntityMetadata    `yaml:"entityMetadata"`
	AttributeMetadata []*core.AttributeMetadata `yaml:"attributeMetadata"`
}

type entityDoc struct {
	LogicalName     string            `yaml:"logicalName"`
	ID              string            `yaml:"id"`
	Attributes      map[string]value  `yaml:"attributes"`
	FormattedValues map[string]string `yaml:"formattedValues"`
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	fx := &Fixture{
		EntityMetadata:    doc.EntityMetadata,
		AttributeMetadata: doc.AttributeMetadata,
	}
	for i, ed := range doc.Entities {
		e, err := ed.entity()
		if err != nil {
			return nil, fmt.Errorf("failed to parse fixture: entity %d (%s): %w", i, ed.LogicalName, err)
		}
		fx.Entities = append(fx.Entities, e)
	}
	for _, em := range fx.EntityMetadata {
		for _, am := range em.Attributes {
			if am.EntityLogicalName == "" {
				am.EntityLogicalName = em.LogicalName
			}
		}
	}
	return fx, nil
}

// Load reads and decodes the fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Apply hands the fixture data to s.
func (f *Fixture) Apply(s Seeder) {
	s.AddEntityMetadata(f.EntityMetadata...)
	s.AddAttributeMetadata(f.AttributeMetadata...)
	s.AddEntities(f.Entities...)
}

func (ed entityDoc) entity() (*core.Entity, error) {
	if ed.LogicalName == "" {
		return nil, fmt.Errorf("logicalName is required")
	}
	id, err := parseID(ed.ID)
	if err != nil {
		return nil, err
	}
	e := core.NewEntityWithID(ed.LogicalName, id)
	for k, v := range ed.Attributes {
		e.Set(k, v.v)
	}
	for k, v := range ed.FormattedValues {
		e.FormattedValues[k] = v
	}
	return e, nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
