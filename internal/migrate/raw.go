package migrate

// Coercion helpers over raw decoded values. JSON decoding yields
// map[string]any, []any, string, bool, and float64; the helpers also
// accept Go integer types so documents built in-process migrate the same
// way as documents read from disk.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// takeString coerces m[key] to a string. An absent key yields the zero
// value and leaves changed alone (the key-set check accounts for those);
// a present value of the wrong type cannot survive re-encoding, so it
// flags changed.
func takeString(m map[string]any, key string, changed bool) (string, bool) {
	v, ok := asString(m[key])
	if !ok {
		if _, present := m[key]; present {
			return "", true
		}
		return "", changed
	}
	return v, changed
}

// takeBool is takeString for booleans.
func takeBool(m map[string]any, key string, changed bool) (bool, bool) {
	v, ok := asBool(m[key])
	if !ok {
		if _, present := m[key]; present {
			return false, true
		}
		return false, changed
	}
	return v, changed
}

// hasExtraKeys reports whether the record carries keys outside the
// canonical set. Such keys are dropped by re-encoding, which makes the
// output structurally different from the input.
func hasExtraKeys(m map[string]any, known []string) bool {
	for k := range m {
		recognized := false
		for _, kk := range known {
			if k == kk {
				recognized = true
				break
			}
		}
		if !recognized {
			return true
		}
	}
	return false
}

// reshaped reports whether the record's key set differs from the
// canonical key set, in either direction. A reshaped record re-encodes
// differently even when every kept value is unchanged.
func reshaped(m map[string]any, keys []string) bool {
	if len(m) != len(keys) {
		return true
	}
	for _, k := range keys {
		if _, present := m[k]; !present {
			return true
		}
	}
	return false
}
