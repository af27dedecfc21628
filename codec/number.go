package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/reoring/lensmap"
)

// Int converts between int and the generic representation. The reverse
// direction accepts every Go integer type, integral floats (JSON decoders
// produce float64) and number types exposing Int64 (json.Number).
func Int() lensmap.TransformerOf[int, any] {
	return lensmap.New(
		func(n int) (any, error) { return n, nil },
		func(v any) (int, error) {
			i, err := toInt64(v)
			if err != nil {
				return 0, err
			}
			if i < math.MinInt || i > math.MaxInt {
				return 0, overflow(v)
			}
			return int(i), nil
		},
	)
}

// Float converts between float64 and the generic representation. The reverse
// direction accepts any numeric representation.
func Float() lensmap.TransformerOf[float64, any] {
	return lensmap.New(
		func(f float64) (any, error) { return f, nil },
		func(v any) (float64, error) {
			switch n := v.(type) {
			case float64:
				return n, nil
			case float32:
				return float64(n), nil
			case interface{ Float64() (float64, error) }:
				f, err := n.Float64()
				if err != nil {
					return 0, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: "invalid number", Hint: "number", Cause: err}}
				}
				return f, nil
			}
			i, err := toInt64(v)
			if err != nil {
				return 0, invalidType("number", v)
			}
			return float64(i), nil
		},
	)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUint64(uint64(n), v)
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUint64(n, v)
	case float32:
		return fromFloat64(float64(n), v)
	case float64:
		return fromFloat64(n, v)
	case interface{ Int64() (int64, error) }:
		i, err := n.Int64()
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
				return 0, overflow(v)
			}
			return 0, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: "expected integer", Hint: "integer", Cause: err}}
		}
		return i, nil
	default:
		return 0, invalidType("integer", v)
	}
}

func fromUint64(n uint64, v any) (int64, error) {
	if n > math.MaxInt64 {
		return 0, overflow(v)
	}
	return int64(n), nil
}

func fromFloat64(f float64, v any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: fmt.Sprintf("expected integer, got %v", f), Hint: "integer"}}
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, overflow(v)
	}
	return int64(f), nil
}

func overflow(v any) lensmap.Issues {
	return lensmap.Issues{{Code: lensmap.CodeOverflow, Message: fmt.Sprintf("%v overflows int", v), Params: map[string]any{"got": v}}}
}
