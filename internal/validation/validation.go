package validation

import "strings"

// Violations maps a field name to a short machine-readable reason. An empty
// map means the input passed.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MinInt(field string, val, minVal int, v Violations) {
	if val < minVal {
		v[field] = "below_minimum"
	}
}

// Invalid records an arbitrary reason for a field, used when a value fails
// domain parsing rather than a structural check.
func Invalid(field, reason string, v Violations) {
	if reason == "" {
		reason = "invalid"
	}
	v[field] = reason
}
