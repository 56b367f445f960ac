package fixture

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/xrmtesting/core"
)

// value is one attribute value in a fixture document.
type value struct {
	v any
}

type referenceDoc struct {
	LogicalName string `yaml:"logicalName"`
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
}

type aliasedDoc struct {
	Entity    string `yaml:"entity"`
	Attribute string `yaml:"attribute"`
	Value     value  `yaml:"value"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw any
		if err := node.Decode(&raw); err != nil {
			return err
		}
		v.v = raw
		return nil
	case yaml.SequenceNode:
		var items []value
		if err := node.Decode(&items); err != nil {
			return err
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item.v
		}
		v.v = out
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: typed value must have exactly one key", node.Line)
		}
		typed, err := decodeTyped(node.Content[0].Value, node.Content[1])
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, node.Content[0].Value, err)
		}
		v.v = typed
		return nil
	case yaml.AliasNode:
		return v.UnmarshalYAML(node.Alias)
	default:
		return fmt.Errorf("line %d: unsupported value", node.Line)
	}
}

func decodeTyped(kind string, node *yaml.Node) (any, error) {
	switch kind {
	case "reference":
		var ref referenceDoc
		if err := node.Decode(&ref); err != nil {
			return nil, err
		}
		id, err := parseID(ref.ID)
		if err != nil {
			return nil, err
		}
		return core.EntityReference{LogicalName: ref.LogicalName, ID: id, Name: ref.Name}, nil
	case "option":
		var n int
		if err := node.Decode(&n); err != nil {
			return nil, err
		}
		return core.NewOptionSetValue(n), nil
	case "money":
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return core.NewMoneyFromString(s)
	case "guid":
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid guid %q: %w", s, err)
		}
		return id, nil
	case "collection":
		var docs []entityDoc
		if err := node.Decode(&docs); err != nil {
			return nil, err
		}
		coll := core.NewEntityCollection()
		for i, d := range docs {
			e, err := d.entity()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			coll.Entities = append(coll.Entities, e)
		}
		return coll, nil
	case "aliased":
		var a aliasedDoc
		if err := node.Decode(&a); err != nil {
			return nil, err
		}
		return core.AliasedValue{EntityLogicalName: a.Entity, AttributeLogicalName: a.Attribute, Value: a.Value.v}, nil
	default:
		return nil, fmt.Errorf("unknown value type (want reference, option, money, guid, collection or aliased)")
	}
}
