package service

import (
	"fmt"
	"maps"
	"strconv"
)

// Configuration holds scalar service options keyed by option name.
type Configuration map[string]any

// Merge returns a copy of c with override values applied on top.
func (c Configuration) Merge(override Configuration) Configuration {
	out := make(Configuration, len(c)+len(override))
	maps.Copy(out, c)
	maps.Copy(out, override)
	return out
}

// String returns the option rendered as text, or "" if it is unset.
func (c Configuration) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Int returns the option as an integer, or 0 when it is unset or not numeric.
func (c Configuration) Int(key string) int {
	n, err := strconv.Atoi(c.String(key))
	if err != nil {
		return 0
	}
	return n
}
