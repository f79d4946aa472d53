package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt is an integer that accepts native JSON numbers, string-encoded
// numbers ("28", "28.5") and null. Values that cannot be coerced decode as 0
// instead of failing the whole payload.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	// Fast path: plain integer
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexInt(i)
		return nil
	}

	// Fractional number, truncated
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(int64(n))
		return nil
	}

	// Quoted value
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(coerceInt(s))
		return nil
	}

	*f = 0
	return nil
}

// Int returns the value as an int.
func (f FlexInt) Int() int {
	return int(f)
}

func coerceInt(s string) int64 {
	if s == "" {
		return 0
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(n)
	}
	return 0
}
