package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
)

// ParseFlag normalizes the representations a boolean column can arrive in:
// bool, the strings accepted by strconv.ParseBool ("true", "false", "1",
// "0", "t", "f", any case, surrounding spaces ignored), and the numbers 0
// and 1 (including JSON numbers). Everything else is invalid input.
func ParseFlag(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case *bool:
		if x != nil {
			return *x, nil
		}
	case string:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(x)))
		if err == nil {
			return b, nil
		}
	case int:
		return intFlag(int64(x), v)
	case int8:
		return intFlag(int64(x), v)
	case int16:
		return intFlag(int64(x), v)
	case int32:
		return intFlag(int64(x), v)
	case int64:
		return intFlag(x, v)
	case uint8:
		return intFlag(int64(x), v)
	case float64:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return intFlag(n, v)
		}
	}
	return false, flagError(v)
}

func intFlag(n int64, raw any) (bool, error) {
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, flagError(raw)
}

func flagError(v any) error {
	return errs.NewInvalidInputError(
		fmt.Sprintf("cannot interpret %v (%T) as a boolean", v, v),
		nil,
	)
}

// FlagPtr is ParseFlag for optional inputs: nil stays nil, so an omitted
// flag keeps meaning "not supplied".
func FlagPtr(v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, err := ParseFlag(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Flag is a boolean input field that decodes through ParseFlag, so
// "false", 0 and false are the same value in a JSON body or query string.
// Use *Flag for optional fields; JSON null leaves the pointer nil.
type Flag bool

// NewFlag returns a pointer to b as a Flag.
func NewFlag(b bool) *Flag {
	f := Flag(b)
	return &f
}

// Bool returns the flag as *bool. A nil flag yields nil.
func (f *Flag) Bool() *bool {
	if f == nil {
		return nil
	}
	b := bool(*f)
	return &b
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return flagError(string(data))
	}
	b, err := ParseFlag(raw)
	if err != nil {
		return err
	}
	*f = Flag(b)
	return nil
}

func (f *Flag) UnmarshalText(text []byte) error {
	b, err := ParseFlag(string(text))
	if err != nil {
		return err
	}
	*f = Flag(b)
	return nil
}
