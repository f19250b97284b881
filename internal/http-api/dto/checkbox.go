package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Checkbox is a boolean form field. HTML checkboxes post "y" or "on" when
// ticked and nothing when not; JSON clients send a plain boolean.
type Checkbox bool

// UnmarshalParam is used by gin's form binding.
func (c *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "y", "yes", "on", "true", "1":
		*c = true
	case "", "n", "no", "off", "false", "0":
		*c = false
	default:
		return fmt.Errorf("invalid checkbox value %q", param)
	}
	return nil
}

func (c *Checkbox) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*c = Checkbox(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid checkbox value %s", b)
	}
	return c.UnmarshalParam(s)
}
