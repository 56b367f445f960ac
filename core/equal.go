package core

import (
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValuesEqual compares two attribute values the way the platform does for
// equality conditions:
//   - references match on logical name and id (a bare uuid matches the id)
//   - option sets and money compare numerically, also against plain numbers
//   - numbers of different Go types compare by value
//   - strings compare case-insensitively
//   - aliased values are unwrapped
func ValuesEqual(a, b any) bool {
	a, b = unalias(a), unalias(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if ra, ok := a.(EntityReference); ok {
		return referenceEquals(ra, b)
	}
	if rb, ok := b.(EntityReference); ok {
		return referenceEquals(rb, a)
	}

	if ida, ok := toUUID(a); ok {
		if idb, ok := toUUID(b); ok {
			return ida == idb
		}
	}

	if da, ok := toDecimal(a); ok {
		if db, ok := toDecimal(b); ok {
			return da.Equal(db)
		}
		return false
	}

	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.EqualFold(sa, sb)
		}
		return false
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}

	return reflect.DeepEqual(a, b)
}

// CompareValues orders two attribute values. ok is false when the values
// are not mutually comparable (different kinds, nil, references).
func CompareValues(a, b any) (cmp int, ok bool) {
	a, b = unalias(a), unalias(b)
	if a == nil || b == nil {
		return 0, false
	}
	if da, ok := toDecimal(a); ok {
		if db, ok := toDecimal(b); ok {
			return da.Cmp(db), true
		}
		return 0, false
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(sa), strings.ToLower(sb)), true
		}
		return 0, false
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), true
		}
	}
	return 0, false
}

func unalias(v any) any {
	for {
		av, ok := v.(AliasedValue)
		if !ok {
			return v
		}
		v = av.Value
	}
}

func referenceEquals(ref EntityReference, other any) bool {
	switch o := other.(type) {
	case EntityReference:
		return ref.ID == o.ID && strings.EqualFold(ref.LogicalName, o.LogicalName)
	default:
		id, ok := toUUID(other)
		return ok && id == ref.ID
	}
}

func toUUID(v any) (uuid.UUID, bool) {
	switch tv := v.(type) {
	case uuid.UUID:
		return tv, true
	case *uuid.UUID:
		if tv == nil {
			return uuid.Nil, false
		}
		return *tv, true
	case string:
		id, err := uuid.Parse(tv)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	default:
		return uuid.Nil, false
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch tv := v.(type) {
	case decimal.Decimal:
		return tv, true
	case Money:
		return tv.Value, true
	case OptionSetValue:
		return decimal.NewFromInt(int64(tv.Value)), true
	case int:
		return decimal.NewFromInt(int64(tv)), true
	case int8:
		return decimal.NewFromInt(int64(tv)), true
	case int16:
		return decimal.NewFromInt(int64(tv)), true
	case int32:
		return decimal.NewFromInt32(tv), true
	case int64:
		return decimal.NewFromInt(tv), true
	case uint:
		return fromUint64(uint64(tv)), true
	case uint8:
		return fromUint64(uint64(tv)), true
	case uint16:
		return fromUint64(uint64(tv)), true
	case uint32:
		return fromUint64(uint64(tv)), true
	case uint64:
		return fromUint64(tv), true
	case float32:
		return decimal.NewFromFloat32(tv), true
	case float64:
		return decimal.NewFromFloat(tv), true
	default:
		return decimal.Decimal{}, false
	}
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
