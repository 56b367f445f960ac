package core

// QueryBase is implemented by the query shapes accepted by RetrieveMultiple.
// The fake service dispatches on the concrete type; QueryName is only used
// for traces and error messages.
type QueryBase interface {
	QueryName() string
}

// LogicalOperator combines conditions inside a filter.
type LogicalOperator string

const (
	// LogicalAnd requires every condition and child filter to match.
	LogicalAnd LogicalOperator = "And"
	// LogicalOr requires at least one condition or child filter to match.
	LogicalOr LogicalOperator = "Or"
)

// ConditionOperator is the comparison applied by a ConditionExpression.
type ConditionOperator string

// Condition operators understood by the in-memory evaluator.
const (
	OperatorEqual        ConditionOperator = "Equal"
	OperatorNotEqual     ConditionOperator = "NotEqual"
	OperatorNull         ConditionOperator = "Null"
	OperatorNotNull      ConditionOperator = "NotNull"
	OperatorIn           ConditionOperator = "In"
	OperatorNotIn        ConditionOperator = "NotIn"
	OperatorLike         ConditionOperator = "Like"
	OperatorNotLike      ConditionOperator = "NotLike"
	OperatorBeginsWith   ConditionOperator = "BeginsWith"
	OperatorEndsWith     ConditionOperator = "EndsWith"
	OperatorGreaterThan  ConditionOperator = "GreaterThan"
	OperatorGreaterEqual ConditionOperator = "GreaterEqual"
	OperatorLessThan     ConditionOperator = "LessThan"
	OperatorLessEqual    ConditionOperator = "LessEqual"
)

// ConditionExpression compares one attribute against zero or more values.
type ConditionExpression struct {
	AttributeName string            `json:"attributeName" yaml:"attributeName"`
	Operator      ConditionOperator `json:"operator" yaml:"operator"`
	Values        []any             `json:"values,omitempty" yaml:"values,omitempty"`
}

// NewCondition builds a condition.
func NewCondition(attribute string, op ConditionOperator, values ...any) ConditionExpression {
	return ConditionExpression{AttributeName: attribute, Operator: op, Values: values}
}

// FilterExpression groups conditions and nested filters under one operator.
// An empty FilterOperator is treated as And.
type FilterExpression struct {
	FilterOperator LogicalOperator       `json:"filterOperator" yaml:"filterOperator"`
	Conditions     []ConditionExpression `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Filters        []*FilterExpression   `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// NewFilter creates an empty filter with the given operator.
func NewFilter(op LogicalOperator) *FilterExpression {
	return &FilterExpression{FilterOperator: op}
}

// AddCondition appends a condition (chainable).
func (f *FilterExpression) AddCondition(attribute string, op ConditionOperator, values ...any) *FilterExpression {
	f.Conditions = append(f.Conditions, NewCondition(attribute, op, values...))
	return f
}

// AddFilter appends a nested filter (chainable).
func (f *FilterExpression) AddFilter(child *FilterExpression) *FilterExpression {
	f.Filters = append(f.Filters, child)
	return f
}

// Operator returns the effective logical operator.
func (f *FilterExpression) Operator() LogicalOperator {
	if f.FilterOperator == "" {
		return LogicalAnd
	}
	return f.FilterOperator
}

// QueryExpression is the structured query object model.
type QueryExpression struct {
	EntityName string            `json:"entityName" yaml:"entityName"`
	ColumnSet  ColumnSet         `json:"columnSet" yaml:"columnSet"`
	Criteria   *FilterExpression `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	TopCount   int               `json:"topCount,omitempty" yaml:"topCount,omitempty"`
}

// NewQueryExpression creates a query over all columns with an empty And filter.
func NewQueryExpression(entityName string) *QueryExpression {
	return &QueryExpression{EntityName: entityName, ColumnSet: AllColumnsSet(), Criteria: NewFilter(LogicalAnd)}
}

// QueryName implements QueryBase.
func (*QueryExpression) QueryName() string { return "QueryExpression" }

// FetchExpression wraps a FetchXML document.
type FetchExpression struct {
	Query string `json:"query" yaml:"query"`
}

// NewFetchExpression wraps the FetchXML string.
func NewFetchExpression(fetchXML string) *FetchExpression {
	return &FetchExpression{Query: fetchXML}
}

// QueryName implements QueryBase.
func (*FetchExpression) QueryName() string { return "FetchExpression" }

// QueryByAttribute matches records whose attributes equal the paired values.
// Attributes and Values are parallel slices.
type QueryByAttribute struct {
	EntityName string    `json:"entityName" yaml:"entityName"`
	ColumnSet  ColumnSet `json:"columnSet" yaml:"columnSet"`
	Attributes []string  `json:"attributes" yaml:"attributes"`
	Values     []any     `json:"values" yaml:"values"`
}

// NewQueryByAttribute creates a query over all columns.
func NewQueryByAttribute(entityName string) *QueryByAttribute {
	return &QueryByAttribute{EntityName: entityName, ColumnSet: AllColumnsSet()}
}

// AddAttributeValue appends an attribute/value pair (chainable).
func (q *QueryByAttribute) AddAttributeValue(attribute string, value any) *QueryByAttribute {
	q.Attributes = append(q.Attributes, attribute)
	q.Values = append(q.Values, value)
	return q
}

// QueryName implements QueryBase.
func (*QueryByAttribute) QueryName() string { return "QueryByAttribute" }
