package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const minorPerMajor = 100

// Money is an amount in minor currency units. On the wire it is a decimal string with two
// fraction digits, which the channel manager accepts for every currency it prices in.
type Money int64

func (m Money) String() string {
	sign := ""
	value := int64(m)

	if value < 0 {
		sign = "-"
		value = -value
	}

	return fmt.Sprintf("%s%d.%02d", sign, value/minorPerMajor, value%minorPerMajor)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts "123.45", "123" or a bare JSON number in major units.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "" || raw == "null" {
		*m = 0

		return nil
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// ParseMoney parses a decimal amount in major units, extra fraction digits are truncated.
func ParseMoney(raw string) (Money, error) {
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	whole, fraction, _ := strings.Cut(raw, ".")

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	fraction = (fraction + "00")[:2]

	minor, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	total := major*minorPerMajor + minor
	if negative {
		total = -total
	}

	return Money(total), nil
}
