package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Money is a decimal amount as transmitted by the API. The service encodes
// decimals either as JSON numbers or as quoted strings depending on the
// serializer; both forms decode into the raw digit text so no precision is
// lost before display.
type Money string

// UnmarshalJSON accepts both `12.5` and `"12.5"` (and null, which becomes
// the zero amount).
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("unquote money value: %w", err)
		}
		*m = Money(unquoted)
		return nil
	}
	*m = Money(data)
	return nil
}

// MarshalJSON encodes the amount as a JSON number when it parses as one,
// otherwise as a string.
func (m Money) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(m), 64); err == nil {
		return []byte(m), nil
	}
	return []byte(strconv.Quote(string(m))), nil
}

// Float64 parses the amount for arithmetic and formatting. Absent or
// malformed amounts read as zero, mirroring how missing deposits are shown.
func (m Money) Float64() float64 {
	f, err := strconv.ParseFloat(string(m), 64)
	if err != nil {
		return 0
	}
	return f
}

// Display renders the amount as a dollar figure with two decimals.
func (m Money) Display() string {
	return fmt.Sprintf("$%.2f", m.Float64())
}
