// Package validate guards every cross-process call with explicit predicate
// checks before a payload is trusted. Each predicate takes arbitrary
// untrusted input (typically JSON decoded into any), never panics, and
// reports failure as a value rather than an error.
//
// Validators are stateless and referentially transparent; they are safe to
// call concurrently and in any order.
package validate

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
)

// Result is the verdict of a single predicate.
type Result struct {
	Valid bool
	Error string // human-readable reason, empty when Valid
}

func ok() Result {
	return Result{Valid: true}
}

func fail(format string, args ...any) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

func fieldLabel(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}

// String validates a non-empty string (whitespace-only counts as empty).
func String(v any, label string) Result {
	label = fieldLabel(label, "value")
	s, isStr := v.(string)
	if !isStr {
		return fail("%s must be a string", label)
	}
	if strings.TrimSpace(s) == "" {
		return fail("%s must not be empty", label)
	}
	return ok()
}

// Boolean validates a strict boolean. No truthy coercion: only true and
// false pass.
func Boolean(v any, label string) Result {
	label = fieldLabel(label, "value")
	if _, isBool := v.(bool); !isBool {
		return fail("%s must be a boolean", label)
	}
	return ok()
}

// PlainObject validates a non-null, non-array structured record.
func PlainObject(v any, label string) Result {
	label = fieldLabel(label, "value")
	if _, isMap := v.(map[string]any); !isMap {
		return fail("%s must be an object", label)
	}
	return ok()
}

// NonNegativeInteger validates a finite integer >= 0. Floats with a
// fractional part, strings, and negatives all fail. JSON numbers arrive
// as float64; in-process callers may pass int or int64.
func NonNegativeInteger(v any, label string) Result {
	label = fieldLabel(label, "value")
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return fail("%s must be a number", label)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fail("%s must be finite", label)
	}
	if f != math.Trunc(f) {
		return fail("%s must be an integer", label)
	}
	if f < 0 {
		return fail("%s must not be negative", label)
	}
	return ok()
}

// SafeURL validates an absolute http or https URL. Everything else,
// including file:, javascript:, and data: schemes, fails.
func SafeURL(v any, label string) Result {
	label = fieldLabel(label, "url")
	s, isStr := v.(string)
	if !isStr {
		return fail("%s must be a string", label)
	}
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fail("%s is not a valid URL", label)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail("%s must use http or https", label)
	}
	if u.Host == "" {
		return fail("%s must be an absolute URL", label)
	}
	return ok()
}

// Directory validates a directory payload: a record with a present id and
// a non-empty path. Other fields are filled or repaired later; only these
// two are required before the payload may be acted on.
func Directory(v any, label string) Result {
	label = fieldLabel(label, "directory")
	m, isMap := v.(map[string]any)
	if !isMap {
		return fail("%s must be an object", label)
	}
	if _, hasID := m["id"]; !hasID {
		return fail("%s is missing id", label)
	}
	path, isStr := m["path"].(string)
	if !isStr || strings.TrimSpace(path) == "" {
		return fail("%s must have a non-empty path", label)
	}
	return ok()
}

// Document validates a full configuration document payload: directories,
// groups, and terminals must each be present as sequences. Settings may be
// any record or absent; migration completes it either way.
func Document(v any, label string) Result {
	label = fieldLabel(label, "config")
	m, isMap := v.(map[string]any)
	if !isMap {
		return fail("%s must be an object", label)
	}
	for _, key := range []string{"directories", "groups", "terminals"} {
		field, present := m[key]
		if !present {
			return fail("%s is missing %s", label, key)
		}
		if _, isSlice := field.([]any); !isSlice {
			return fail("%s.%s must be an array", label, key)
		}
	}
	if settings, present := m["settings"]; present {
		if _, isMap := settings.(map[string]any); !isMap {
			return fail("%s.settings must be an object", label)
		}
	}
	return ok()
}

// ExportOptionFlags are the flag keys recognized on export payloads.
var ExportOptionFlags = []string{"includeSettings", "includeFavorites"}

// ImportOptionFlags are the flag keys recognized on import payloads.
var ImportOptionFlags = []string{"merge", "replaceSettings"}

// ExportOptions validates an export options payload. Recognized flags, if
// present, must be strictly boolean. Unknown keys are ignored and missing
// keys are allowed; defaults apply elsewhere.
func ExportOptions(v any, label string) Result {
	return options(v, fieldLabel(label, "export options"), ExportOptionFlags)
}

// ImportOptions validates an import options payload with the same rules
// as ExportOptions.
func ImportOptions(v any, label string) Result {
	return options(v, fieldLabel(label, "import options"), ImportOptionFlags)
}

func options(v any, label string, flags []string) Result {
	if v == nil {
		return ok() // absent options mean all defaults
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		return fail("%s must be an object", label)
	}
	for _, flag := range flags {
		val, present := m[flag]
		if !present {
			continue
		}
		if _, isBool := val.(bool); !isBool {
			return fail("%s.%s must be a boolean", label, flag)
		}
	}
	return ok()
}

var localePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// LocaleCode validates a locale code: two lowercase letters, optionally
// followed by a hyphen and two uppercase letters ("en", "zh-TW").
// Underscores, wrong case, and wrong lengths all fail.
func LocaleCode(v any, label string) Result {
	label = fieldLabel(label, "locale")
	s, isStr := v.(string)
	if !isStr {
		return fail("%s must be a string", label)
	}
	if !localePattern.MatchString(s) {
		return fail("%s must look like \"en\" or \"zh-TW\"", label)
	}
	return ok()
}
