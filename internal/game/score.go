package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// speedBonus rewards fast correct answers: 3 under 2s, 2 under 4s, 1 under
// 6s, nothing after that.
func speedBonus(elapsed float64) int {
	switch {
	case elapsed < 2:
		return 3
	case elapsed < 4:
		return 2
	case elapsed < 6:
		return 1
	default:
		return 0
	}
}

// coerceInt turns whatever the client sent as an answer into an int.
// JSON clients send numbers as float64, some send digit strings; anything
// that is not a whole number is rejected as invalid input.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("answer %v is not an integer: %w", n, ErrInvalidInput)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("answer %q is not an integer: %w", n.String(), ErrInvalidInput)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("answer %q is not an integer: %w", n, ErrInvalidInput)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("answer is missing: %w", ErrInvalidInput)
	default:
		return 0, fmt.Errorf("answer has unsupported type %T: %w", v, ErrInvalidInput)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
