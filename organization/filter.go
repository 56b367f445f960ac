package organization

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hupe1980/xrmtesting/core"
)

// matchFilter evaluates a filter tree against one record. An empty filter
// matches everything.
func matchFilter(e *core.Entity, f *core.FilterExpression) (bool, error) {
	if f == nil {
		return true, nil
	}
	or := f.Operator() == core.LogicalOr
	if or && len(f.Conditions) == 0 && len(f.Filters) == 0 {
		return true, nil
	}

	for _, c := range f.Conditions {
		ok, err := matchCondition(e, c)
		if err != nil {
			return false, err
		}
		if or && ok {
			return true, nil
		}
		if !or && !ok {
			return false, nil
		}
	}
	for _, child := range f.Filters {
		ok, err := matchFilter(e, child)
		if err != nil {
			return false, err
		}
		if or && ok {
			return true, nil
		}
		if !or && !ok {
			return false, nil
		}
	}
	return !or, nil
}

func matchCondition(e *core.Entity, c core.ConditionExpression) (bool, error) {
	actual, present := e.Get(c.AttributeName)
	if present && actual == nil {
		present = false
	}
	values := make([]any, 0, len(c.Values))
	for _, v := range flatten(c.Values) {
		values = append(values, resolveLiteral(v, actual))
	}

	switch c.Operator {
	case core.OperatorNull:
		return !present, nil
	case core.OperatorNotNull:
		return present, nil
	case core.OperatorEqual, core.OperatorNotEqual:
		if len(values) != 1 {
			return false, fmt.Errorf("%w: %s on %q expects one value, got %d", core.ErrInvalidQuery, c.Operator, c.AttributeName, len(values))
		}
		if !present {
			return false, nil
		}
		eq := core.ValuesEqual(actual, values[0])
		return eq == (c.Operator == core.OperatorEqual), nil
	case core.OperatorIn, core.OperatorNotIn:
		if len(values) == 0 {
			return false, fmt.Errorf("%w: %s on %q expects at least one value", core.ErrInvalidQuery, c.Operator, c.AttributeName)
		}
		if !present {
			return false, nil
		}
		in := false
		for _, v := range values {
			if core.ValuesEqual(actual, v) {
				in = true
				break
			}
		}
		return in == (c.Operator == core.OperatorIn), nil
	case core.OperatorLike, core.OperatorNotLike, core.OperatorBeginsWith, core.OperatorEndsWith:
		pattern, err := singleString(c, values)
		if err != nil {
			return false, err
		}
		s, ok := actual.(string)
		if !present || !ok {
			return false, nil
		}
		return matchText(c.Operator, s, pattern)
	case core.OperatorGreaterThan, core.OperatorGreaterEqual, core.OperatorLessThan, core.OperatorLessEqual:
		if len(values) != 1 {
			return false, fmt.Errorf("%w: %s on %q expects one value, got %d", core.ErrInvalidQuery, c.Operator, c.AttributeName, len(values))
		}
		if !present {
			return false, nil
		}
		cmp, ok := core.CompareValues(actual, values[0])
		if !ok {
			return false, nil
		}
		switch c.Operator {
		case core.OperatorGreaterThan:
			return cmp > 0, nil
		case core.OperatorGreaterEqual:
			return cmp >= 0, nil
		case core.OperatorLessThan:
			return cmp < 0, nil
		default:
			return cmp <= 0, nil
		}
	default:
		return false, &core.NotImplementedError{What: fmt.Sprintf("condition operator %q", c.Operator)}
	}
}

func singleString(c core.ConditionExpression, values []any) (string, error) {
	if len(values) != 1 {
		return "", fmt.Errorf("%w: %s on %q expects one value, got %d", core.ErrInvalidQuery, c.Operator, c.AttributeName, len(values))
	}
	switch v := values[0].(type) {
	case string:
		return v, nil
	case fetchLiteral:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: %s on %q expects a string, got %T", core.ErrInvalidQuery, c.Operator, c.AttributeName, values[0])
	}
}

func matchText(op core.ConditionOperator, s, pattern string) (bool, error) {
	switch op {
	case core.OperatorBeginsWith:
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(pattern)), nil
	case core.OperatorEndsWith:
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(pattern)), nil
	}
	re, err := likePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s) == (op == core.OperatorLike), nil
}

// likePattern compiles a SQL LIKE pattern. % matches any run of characters
// and _ exactly one; matching ignores case.
func likePattern(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteByte('.')
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteByte('$')
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: like pattern %q: %v", core.ErrInvalidQuery, pattern, err)
	}
	return re, nil
}

// flatten expands slice values so In conditions may be built from either
// variadic values or a single slice.
func flatten(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		switch tv := v.(type) {
		case []any:
			out = append(out, flatten(tv)...)
		case []string:
			for _, s := range tv {
				out = append(out, s)
			}
		case []int:
			for _, n := range tv {
				out = append(out, n)
			}
		case []uuid.UUID:
			for _, id := range tv {
				out = append(out, id)
			}
		default:
			out = append(out, v)
		}
	}
	return out
}

// fetchLiteral is a condition value read from FetchXML. It has no type of
// its own and is converted to the type of the attribute it is compared to.
type fetchLiteral string

func resolveLiteral(v any, actual any) any {
	lit, ok := v.(fetchLiteral)
	if !ok {
		return v
	}
	s := string(lit)
	switch a := actual.(type) {
	case core.AliasedValue:
		return resolveLiteral(v, a.Value)
	case core.EntityReference, uuid.UUID:
		if id, err := uuid.Parse(strings.Trim(s, "{}")); err == nil {
			return id
		}
	case core.OptionSetValue, core.Money, decimal.Decimal,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	case bool:
		switch s {
		case "0":
			return false
		case "1":
			return true
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	case time.Time:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return s
}
