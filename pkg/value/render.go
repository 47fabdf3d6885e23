package value

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Render returns a literal rendering of v for use in diagnostic messages.
//
// Values with a canonical literal form render as that form (quoted strings,
// bare numbers and booleans, null, compact JSON for records and sequences).
// Values without one (the missing sentinel, symbols, large integers,
// unmarshalable objects) degrade to a tag-qualified form instead of
// failing, so message construction itself can never fail.
func Render(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case missingValue:
		return "undefined"
	case bool:
		return strconv.FormatBool(x)
	case string:
		return strconv.Quote(x)
	case Symbol:
		return "Symbol(" + string(x) + ")"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case json.Number:
		return x.String()
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return fallbackRender(v)
		}
		return x.String()
	case *big.Int:
		if x == nil {
			return fallbackRender(v)
		}
		return x.String() + "n"
	case big.Int:
		return x.String() + "n"
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fallbackRender(v)
	}
}

// fallbackRender is the tag-qualified degraded form.
func fallbackRender(v any) string {
	return "<" + string(TypeOf(v)) + ">"
}
