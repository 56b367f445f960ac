package organization

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/plaintext"
)

// RetrieveMultiple evaluates the query against the fixture records. Deleted
// records never match. Returned entities are copies.
func (s *FakeService) RetrieveMultiple(ctx context.Context, query core.QueryBase) (*core.EntityCollection, error) {
	if query == nil {
		return nil, fmt.Errorf("retrieve multiple: %w: query is nil", core.ErrInvalidQuery)
	}
	tr := newTrace("Retrieve entity collection by " + query.QueryName())
	tr.line(plaintext.Query(query))
	if err := ctx.Err(); err != nil {
		return nil, s.fail("retrieve_multiple", tr, err)
	}

	var (
		result *core.EntityCollection
		err    error
	)
	switch q := query.(type) {
	case *core.QueryExpression:
		result, err = s.queryExpression(q)
	case *core.FetchExpression:
		result, err = s.fetchExpression(q)
	case *core.QueryByAttribute:
		result, err = s.queryByAttribute(q)
	default:
		err = &core.NotImplementedError{What: fmt.Sprintf("%T", query)}
	}
	if err != nil {
		return nil, s.fail("retrieve_multiple", tr, err)
	}

	s.done("retrieve_multiple", tr, "query", query.QueryName(), "entity", result.EntityName, "count", result.Len())

	s.emit(retrievedText(result))
	return result, nil
}

func (s *FakeService) queryExpression(q *core.QueryExpression) (*core.EntityCollection, error) {
	return s.collect(q.EntityName, q.TopCount, func(e *core.Entity) (bool, error) {
		if q.Criteria == nil {
			return true, nil
		}
		return matchFilter(e, q.Criteria)
	})
}

func (s *FakeService) queryByAttribute(q *core.QueryByAttribute) (*core.EntityCollection, error) {
	if len(q.Attributes) != len(q.Values) {
		return nil, fmt.Errorf("%w: %d attributes but %d values", core.ErrInvalidQuery, len(q.Attributes), len(q.Values))
	}
	return s.collect(q.EntityName, 0, func(e *core.Entity) (bool, error) {
		for i, attr := range q.Attributes {
			v, ok := e.Get(attr)
			if !ok || !core.ValuesEqual(v, q.Values[i]) {
				return false, nil
			}
		}
		return true, nil
	})
}

func (s *FakeService) fetchExpression(q *core.FetchExpression) (*core.EntityCollection, error) {
	doc, err := parseFetch(q.Query)
	if err != nil {
		return nil, err
	}
	filter := doc.Entity.filter()
	return s.collect(doc.Entity.Name, doc.limit(), func(e *core.Entity) (bool, error) {
		if filter == nil {
			return true, nil
		}
		return matchFilter(e, filter)
	})
}

// collect scans the live fixture records of one entity type, in fixture
// order, and copies the ones accepted by match. limit <= 0 means no limit.
func (s *FakeService) collect(entityName string, limit int, match func(*core.Entity) (bool, error)) (*core.EntityCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &core.EntityCollection{EntityName: entityName}
	for _, e := range s.entities {
		if !strings.EqualFold(e.LogicalName, entityName) {
			continue
		}
		if _, deleted := s.deletedSet[e.ID]; deleted {
			continue
		}
		ok, err := match(e)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if limit > 0 && len(result.Entities) == limit {
			result.MoreRecords = true
			break
		}
		result.Entities = append(result.Entities, e.Clone())
	}
	return result, nil
}

// retrievedText lists the records returned by RetrieveMultiple.
func retrievedText(c *core.EntityCollection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Retrieved %d entities", c.Len())
	for _, e := range c.Entities {
		sb.WriteString("\n\n")
		sb.WriteString(plaintext.Entity(e))
	}
	return sb.String()
}
