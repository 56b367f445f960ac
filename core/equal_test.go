package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValuesEqual(t *testing.T) {
	id := uuid.New()
	ref := EntityReference{LogicalName: "contact", ID: id}
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nils", nil, nil, true},
		{"nil and value", nil, 1, false},
		{"strings ignore case", "Contoso", "CONTOSO", true},
		{"different strings", "a", "b", false},
		{"int and int64", 3, int64(3), true},
		{"int and float", 3, 3.0, true},
		{"uint and int", uint8(7), 7, true},
		{"option and int", NewOptionSetValue(2), 2, true},
		{"option and option", NewOptionSetValue(2), NewOptionSetValue(3), false},
		{"money and float", NewMoney(10.5), 10.5, true},
		{"money and decimal", NewMoney(1), decimal.NewFromInt(1), true},
		{"reference and uuid", ref, id, true},
		{"reference and uuid string", ref, id.String(), true},
		{"references ignore name", ref, EntityReference{LogicalName: "Contact", ID: id, Name: "John"}, true},
		{"references of other type", ref, EntityReference{LogicalName: "account", ID: id}, false},
		{"uuid and string", id, id.String(), true},
		{"times", when, when.In(time.FixedZone("x", 3600)), true},
		{"aliased", AliasedValue{Value: "x"}, "X", true},
		{"number and string", 1, "1", false},
		{"bools", true, true, true},
		{"slices", []any{1}, []any{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValuesEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, ValuesEqual(tt.b, tt.a))
		})
	}
}

func TestCompareValues(t *testing.T) {
	cmp, ok := CompareValues(1, 2.5)
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = CompareValues(NewMoney(5), 5)
	assert.True(t, ok)
	assert.Equal(t, 0, cmp)

	cmp, ok = CompareValues("b", "A")
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cmp, ok = CompareValues(early, early.Add(time.Hour))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = CompareValues(uint64(1<<63), int64(1))
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok = CompareValues("a", 1)
	assert.False(t, ok)
	_, ok = CompareValues(nil, 1)
	assert.False(t, ok)
	_, ok = CompareValues(EntityReference{}, EntityReference{})
	assert.False(t, ok)
}
