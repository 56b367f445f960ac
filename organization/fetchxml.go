package organization

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/xrmtesting/core"
)

type fetchDocument struct {
	XMLName xml.Name     `xml:"fetch"`
	Top     string       `xml:"top,attr"`
	Count   string       `xml:"count,attr"`
	Entity  *fetchEntity `xml:"entity"`

	max int
}

type fetchEntity struct {
	Name    string        `xml:"name,attr"`
	Filters []fetchFilter `xml:"filter"`
}

type fetchFilter struct {
	Type       string           `xml:"type,attr"`
	Conditions []fetchCondition `xml:"condition"`
	Filters    []fetchFilter    `xml:"filter"`
}

type fetchCondition struct {
	Attribute string   `xml:"attribute,attr"`
	Operator  string   `xml:"operator,attr"`
	Value     *string  `xml:"value,attr"`
	Values    []string `xml:"value"`
}

var fetchOperators = map[string]core.ConditionOperator{
	"eq":          core.OperatorEqual,
	"ne":          core.OperatorNotEqual,
	"neq":         core.OperatorNotEqual,
	"null":        core.OperatorNull,
	"not-null":    core.OperatorNotNull,
	"in":          core.OperatorIn,
	"not-in":      core.OperatorNotIn,
	"like":        core.OperatorLike,
	"not-like":    core.OperatorNotLike,
	"begins-with": core.OperatorBeginsWith,
	"ends-with":   core.OperatorEndsWith,
	"gt":          core.OperatorGreaterThan,
	"ge":          core.OperatorGreaterEqual,
	"lt":          core.OperatorLessThan,
	"le":          core.OperatorLessEqual,
}

// parseFetch reads the parts of a FetchXML document the fake understands:
// the root entity name, its filters, and the count/top row limit.
// Attributes, orders and link-entities are ignored.
func parseFetch(query string) (*fetchDocument, error) {
	var doc fetchDocument
	if err := xml.Unmarshal([]byte(strings.TrimSpace(query)), &doc); err != nil {
		return nil, fmt.Errorf("invalid FetchXML query: %w: %v", core.ErrInvalidQuery, err)
	}
	if doc.Entity == nil || doc.Entity.Name == "" {
		return nil, fmt.Errorf("invalid FetchXML query: %w: missing /fetch/entity/@name", core.ErrInvalidQuery)
	}
	for _, attr := range []struct{ name, value string }{{"count", doc.Count}, {"top", doc.Top}} {
		if attr.value == "" {
			continue
		}
		n, err := strconv.Atoi(attr.value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid FetchXML query: %w: %s=%q", core.ErrInvalidQuery, attr.name, attr.value)
		}
		if doc.max == 0 || (n > 0 && n < doc.max) {
			doc.max = n
		}
	}
	if err := doc.Entity.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *fetchDocument) limit() int { return d.max }

func (e *fetchEntity) validate() error {
	var walk func(fs []fetchFilter) error
	walk = func(fs []fetchFilter) error {
		for _, f := range fs {
			if t := strings.ToLower(f.Type); t != "" && t != "and" && t != "or" {
				return fmt.Errorf("invalid FetchXML query: %w: filter type %q", core.ErrInvalidQuery, f.Type)
			}
			for _, c := range f.Conditions {
				if c.Attribute == "" {
					return fmt.Errorf("invalid FetchXML query: %w: condition without attribute", core.ErrInvalidQuery)
				}
				if _, ok := fetchOperators[strings.ToLower(c.Operator)]; !ok {
					return &core.NotImplementedError{What: fmt.Sprintf("FetchXML operator %q", c.Operator)}
				}
			}
			if err := walk(f.Filters); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(e.Filters)
}

// filter converts the entity filters into a FilterExpression. Sibling
// filters directly under <entity> are combined with And.
func (e *fetchEntity) filter() *core.FilterExpression {
	if len(e.Filters) == 0 {
		return nil
	}
	if len(e.Filters) == 1 {
		return e.Filters[0].expression()
	}
	root := core.NewFilter(core.LogicalAnd)
	for _, f := range e.Filters {
		root.AddFilter(f.expression())
	}
	return root
}

func (f fetchFilter) expression() *core.FilterExpression {
	op := core.LogicalAnd
	if strings.EqualFold(f.Type, "or") {
		op = core.LogicalOr
	}
	out := core.NewFilter(op)
	for _, c := range f.Conditions {
		var values []any
		if c.Value != nil {
			values = append(values, fetchLiteral(*c.Value))
		}
		for _, v := range c.Values {
			values = append(values, fetchLiteral(strings.TrimSpace(v)))
		}
		out.AddCondition(c.Attribute, fetchOperators[strings.ToLower(c.Operator)], values...)
	}
	for _, child := range f.Filters {
		out.AddFilter(child.expression())
	}
	return out
}
