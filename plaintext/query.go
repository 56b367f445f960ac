package plaintext

import (
	"fmt"
	"strings"

	"github.com/hupe1980/xrmtesting/core"
)

// QueryExpression renders the entity name, the column set and the criteria.
// Nested filters are indented one tab per level.
func QueryExpression(q *core.QueryExpression) string {
	if q == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "EntityName = %s\n", q.EntityName)
	sb.WriteString(ColumnSet(q.ColumnSet))
	sb.WriteString("\n")
	if q.Criteria != nil {
		writeFilter(&sb, q.Criteria, 0)
	}
	if q.TopCount > 0 {
		fmt.Fprintf(&sb, "TopCount = %d\n", q.TopCount)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeFilter(sb *strings.Builder, f *core.FilterExpression, depth int) {
	pad := strings.Repeat("\t", depth)
	fmt.Fprintf(sb, "%sCriteria (FilterOperator = %s)\n", pad, f.Operator())
	for _, c := range f.Conditions {
		fmt.Fprintf(sb, "%s\t%s\n", pad, Condition(c))
	}
	for _, child := range f.Filters {
		if child != nil {
			writeFilter(sb, child, depth+1)
		}
	}
}

// Condition renders `attribute Operator "v1", "v2"`.
func Condition(c core.ConditionExpression) string {
	values := make([]string, len(c.Values))
	for i, v := range c.Values {
		values[i] = Value(v)
	}
	return fmt.Sprintf("%s %s \"%s\"", c.AttributeName, c.Operator, strings.Join(values, "\", \""))
}

// QueryByAttribute renders the entity name, the column set and each
// attribute/value pair.
func QueryByAttribute(q *core.QueryByAttribute) string {
	if q == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "EntityName = %s\n", q.EntityName)
	sb.WriteString(ColumnSet(q.ColumnSet))
	sb.WriteString("\nCriteria\n")
	for i, attr := range q.Attributes {
		var v any
		if i < len(q.Values) {
			v = q.Values[i]
		}
		fmt.Fprintf(&sb, "\t%s = %s\n", attr, Value(v))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FetchExpression renders the FetchXML with surrounding whitespace removed.
func FetchExpression(q *core.FetchExpression) string {
	if q == nil {
		return ""
	}
	return strings.TrimSpace(q.Query)
}

// Query renders any supported query shape; unknown shapes render their name.
func Query(q core.QueryBase) string {
	switch tq := q.(type) {
	case *core.QueryExpression:
		return QueryExpression(tq)
	case *core.QueryByAttribute:
		return QueryByAttribute(tq)
	case *core.FetchExpression:
		return FetchExpression(tq)
	case nil:
		return ""
	default:
		return q.QueryName()
	}
}

// SetStateRequest renders the moniker, state and status codes.
func SetStateRequest(r *core.SetStateRequest) string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "EntityMoniker = %s\n", Reference(r.EntityMoniker))
	fmt.Fprintf(&sb, "State = %d\n", r.State.Value)
	fmt.Fprintf(&sb, "Status = %d", r.Status.Value)
	return sb.String()
}

// References renders each reference on its own line with the given prefix.
func References(refs core.EntityReferenceCollection, prefix string) string {
	lines := make([]string, len(refs))
	for i, ref := range refs {
		lines[i] = prefix + Reference(ref)
	}
	return strings.Join(lines, "\n")
}
