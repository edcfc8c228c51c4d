package validate

import (
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"plain string", "hello", true},
		{"unicode string", "工作", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"number", 42, false},
		{"nil", nil, false},
		{"bool", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input, "field"); got.Valid != tt.want {
				t.Errorf("String(%#v) = %v, want %v (error: %s)", tt.input, got.Valid, tt.want, got.Error)
			}
		})
	}
}

func TestString_ErrorIncludesLabel(t *testing.T) {
	result := String(123, "name")
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if result.Error != "name must be a string" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

func TestBoolean(t *testing.T) {
	if got := Boolean(true, ""); !got.Valid {
		t.Errorf("Boolean(true) invalid: %s", got.Error)
	}
	if got := Boolean(false, ""); !got.Valid {
		t.Errorf("Boolean(false) invalid: %s", got.Error)
	}

	// No truthy coercion
	for _, v := range []any{1, 0, "true", "false", nil, 1.0} {
		if got := Boolean(v, ""); got.Valid {
			t.Errorf("Boolean(%#v) should be invalid", v)
		}
	}
}

func TestPlainObject(t *testing.T) {
	if got := PlainObject(map[string]any{}, ""); !got.Valid {
		t.Errorf("empty map invalid: %s", got.Error)
	}
	if got := PlainObject(map[string]any{"a": 1}, ""); !got.Valid {
		t.Errorf("map invalid: %s", got.Error)
	}

	for _, v := range []any{nil, []any{}, "str", 5, true} {
		if got := PlainObject(v, ""); got.Valid {
			t.Errorf("PlainObject(%#v) should be invalid", v)
		}
	}
}

func TestNonNegativeInteger(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"zero", float64(0), true},
		{"positive", float64(42), true},
		{"int type", 7, true},
		{"int64 type", int64(7), true},
		{"whole float", 10.0, true},
		{"fractional", 1.5, false},
		{"negative", float64(-1), false},
		{"negative fraction", -0.5, false},
		{"NaN", math.NaN(), false},
		{"infinity", math.Inf(1), false},
		{"numeric string", "42", false},
		{"nil", nil, false},
		{"bool", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonNegativeInteger(tt.input, ""); got.Valid != tt.want {
				t.Errorf("NonNegativeInteger(%v) = %v, want %v", tt.input, got.Valid, tt.want)
			}
		})
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"https", "https://example.com", true},
		{"http", "http://example.com/path?q=1", true},
		{"javascript scheme", "javascript:alert(1)", false},
		{"file scheme", "file:///etc/passwd", false},
		{"data scheme", "data:text/html,<script>", false},
		{"scheme only", "https://", false},
		{"relative", "/just/a/path", false},
		{"garbage", "ht tp://bad url", false},
		{"empty", "", false},
		{"non-string", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeURL(tt.input, ""); got.Valid != tt.want {
				t.Errorf("SafeURL(%#v) = %v, want %v (error: %s)", tt.input, got.Valid, tt.want, got.Error)
			}
		})
	}
}

func TestDirectory(t *testing.T) {
	valid := map[string]any{"id": "abc", "path": "/home/me/code"}
	if got := Directory(valid, ""); !got.Valid {
		t.Errorf("valid directory rejected: %s", got.Error)
	}

	tests := []struct {
		name  string
		input any
	}{
		{"missing id", map[string]any{"path": "/home"}},
		{"missing path", map[string]any{"id": "abc"}},
		{"empty path", map[string]any{"id": "abc", "path": "  "}},
		{"non-string path", map[string]any{"id": "abc", "path": 5}},
		{"not an object", "abc"},
		{"nil", nil},
		{"array", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Directory(tt.input, ""); got.Valid {
				t.Errorf("Directory(%#v) should be invalid", tt.input)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	valid := map[string]any{
		"directories": []any{},
		"groups":      []any{},
		"terminals":   []any{},
	}
	if got := Document(valid, ""); !got.Valid {
		t.Errorf("valid document rejected: %s", got.Error)
	}

	withSettings := map[string]any{
		"directories": []any{},
		"groups":      []any{},
		"terminals":   []any{},
		"settings":    map[string]any{"theme": "dark"},
	}
	if got := Document(withSettings, ""); !got.Valid {
		t.Errorf("document with settings rejected: %s", got.Error)
	}

	tests := []struct {
		name  string
		input any
	}{
		{"missing terminals", map[string]any{"directories": []any{}, "groups": []any{}}},
		{"groups not array", map[string]any{"directories": []any{}, "groups": "nope", "terminals": []any{}}},
		{"settings not object", map[string]any{"directories": []any{}, "groups": []any{}, "terminals": []any{}, "settings": "dark"}},
		{"not an object", []any{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Document(tt.input, ""); got.Valid {
				t.Errorf("Document(%#v) should be invalid", tt.input)
			}
		})
	}
}

func TestExportImportOptions(t *testing.T) {
	// Absent options and empty objects are fine
	if got := ExportOptions(nil, ""); !got.Valid {
		t.Errorf("nil export options rejected: %s", got.Error)
	}
	if got := ImportOptions(map[string]any{}, ""); !got.Valid {
		t.Errorf("empty import options rejected: %s", got.Error)
	}

	// Recognized flags must be strictly boolean
	if got := ExportOptions(map[string]any{"includeSettings": true}, ""); !got.Valid {
		t.Errorf("boolean flag rejected: %s", got.Error)
	}
	if got := ExportOptions(map[string]any{"includeSettings": "yes"}, ""); got.Valid {
		t.Error("string flag should be invalid")
	}
	if got := ImportOptions(map[string]any{"merge": 1}, ""); got.Valid {
		t.Error("numeric flag should be invalid")
	}

	// Unknown keys are ignored
	if got := ImportOptions(map[string]any{"somethingElse": "whatever"}, ""); !got.Valid {
		t.Errorf("unknown key should be ignored: %s", got.Error)
	}

	// Non-object input fails
	if got := ExportOptions("options", ""); got.Valid {
		t.Error("string options should be invalid")
	}
}

func TestLocaleCode(t *testing.T) {
	valid := []string{"en", "de", "zh-TW", "pt-BR"}
	for _, code := range valid {
		if got := LocaleCode(code, ""); !got.Valid {
			t.Errorf("LocaleCode(%q) rejected: %s", code, got.Error)
		}
	}

	invalid := []any{"zh_TW", "EN", "zh-tw", "eng", "e", "zh-TWN", "", nil, 42}
	for _, code := range invalid {
		if got := LocaleCode(code, ""); got.Valid {
			t.Errorf("LocaleCode(%#v) should be invalid", code)
		}
	}
}
