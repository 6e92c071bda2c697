package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/commontags/internal/types"
)

// ErrEmptyValue is returned by Coerce for values that carry nothing, such
// as blank strings. Such entries are treated as absent rather than as
// shape mismatches.
var ErrEmptyValue = errors.New("empty value")

// Coerce converts a native value to the Go representation declared for k.
// Values that cannot be represented return an error describing why.
func Coerce(k Key, value any) (any, error) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(strings.Trim(s, "\x00"))
		if s == "" {
			return nil, ErrEmptyValue
		}
		value = s
	}
	if value == nil {
		return nil, ErrEmptyValue
	}

	switch ShapeOf(k) {
	case ShapeText:
		return toText(value)
	case ShapeInt:
		return toInt(k, value)
	case ShapeFloat:
		return toFloat(value)
	case ShapeBool:
		return toBool(value)
	case ShapePartOfSet:
		return toPartOfSet(value)
	case ShapePicture:
		return toPicture(value)
	case ShapeRating:
		return toRating(value)
	default:
		return nil, fmt.Errorf("no shape declared for %s", k.Name())
	}
}

func toText(v any) (any, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case types.Comment:
		return textOf(v.Text)
	case *types.Comment:
		return textOf(v.Text)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32, float64:
		return fmt.Sprint(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case []byte:
		return nil, fmt.Errorf("binary data where text was expected")
	default:
		return nil, fmt.Errorf("cannot use %T as text", v)
	}
}

func textOf(s string) (any, error) {
	s = strings.TrimSpace(strings.Trim(s, "\x00"))
	if s == "" {
		return nil, ErrEmptyValue
	}
	return s, nil
}

func toInt(k Key, v any) (any, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := strconv.Atoi(fmt.Sprint(v))
		if err != nil {
			return nil, fmt.Errorf("integer out of range: %v", v)
		}
		return n, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-integral number %v", v)
		}
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, nil
		}
		// Dates like "2004-05-03" or "2004-05-03T10:00:00Z" carry a year.
		if k == Year || k == OriginalYear {
			if y, ok := LeadingYear(v); ok {
				return y, nil
			}
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil && f == math.Trunc(f) {
			return int(f), nil
		}
		return nil, fmt.Errorf("not an integer")
	default:
		return nil, fmt.Errorf("cannot use %T as integer", v)
	}
}

// LeadingYear extracts a four-digit year from the start of a date string.
func LeadingYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0, false
	}
	if len(s) > 4 && s[4] >= '0' && s[4] <= '9' {
		return 0, false
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

func toFloat(v any) (any, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint8, uint16, uint32, uint64, int8, int16, int32:
		f, _ := strconv.ParseFloat(fmt.Sprint(v), 64)
		return f, nil
	case string:
		s := strings.TrimSpace(v)
		if len(s) > 2 && strings.EqualFold(s[len(s)-2:], "db") {
			s = strings.TrimSpace(s[:len(s)-2])
		}
		s = strings.Replace(s, ",", ".", 1)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return f, nil
	default:
		return nil, fmt.Errorf("cannot use %T as number", v)
	}
}

func toBool(v any) (any, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case uint8:
		return v != 0, nil
	case string:
		switch strings.ToLower(v) {
		case "1", "true", "yes", "y":
			return true, nil
		case "0", "false", "no", "n":
			return false, nil
		}
		return nil, fmt.Errorf("not a boolean")
	default:
		return nil, fmt.Errorf("cannot use %T as boolean", v)
	}
}

func toPartOfSet(v any) (any, error) {
	switch v := v.(type) {
	case types.PartOfSet:
		if v.No == nil && v.Of == nil {
			return nil, ErrEmptyValue
		}
		return v, nil
	case *types.PartOfSet:
		if v == nil {
			return nil, ErrEmptyValue
		}
		return toPartOfSet(*v)
	case int:
		if v <= 0 {
			return nil, ErrEmptyValue
		}
		return types.NewPartOfSet(v, 0), nil
	case uint8, uint16, uint32:
		n, _ := strconv.Atoi(fmt.Sprint(v))
		return toPartOfSet(n)
	case string:
		pos, ok := types.ParsePartOfSet(v)
		if !ok {
			return nil, fmt.Errorf("not a position (expected N or N/M)")
		}
		return pos, nil
	default:
		return nil, fmt.Errorf("cannot use %T as position", v)
	}
}

func toPicture(v any) (any, error) {
	switch v := v.(type) {
	case types.Picture:
		if len(v.Data) == 0 {
			return nil, ErrEmptyValue
		}
		return v, nil
	case *types.Picture:
		if v == nil {
			return nil, ErrEmptyValue
		}
		return toPicture(*v)
	default:
		return nil, fmt.Errorf("cannot use %T as picture", v)
	}
}

func toRating(v any) (any, error) {
	switch v := v.(type) {
	case types.Rating:
		if v.Rating != nil && (*v.Rating < 0 || *v.Rating > 1) {
			return nil, fmt.Errorf("rating %v outside [0,1]", *v.Rating)
		}
		return v, nil
	case *types.Rating:
		if v == nil {
			return nil, ErrEmptyValue
		}
		return toRating(*v)
	case float64:
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("rating %v outside [0,1]", v)
		}
		return types.NewRating("", v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("not a rating")
		}
		return toRating(f)
	default:
		return nil, fmt.Errorf("cannot use %T as rating", v)
	}
}
