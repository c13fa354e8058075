package schema

import "encoding/json"

// Props is the open property bag attached to an element. Values are never
// trusted: every accessor checks presence and dynamic type and falls back to the
// supplied default.
type Props map[string]any

// Has reports whether key is present, regardless of its value.
func (p Props) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p[key]
	return ok
}

// Value returns the raw value stored under key.
func (p Props) Value(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the value under key when it is a string, otherwise fallback.
func (p Props) String(key, fallback string) string {
	if v, ok := p.Value(key).(string); ok {
		return v
	}
	return fallback
}

// Bool returns the value under key when it is a boolean, otherwise fallback.
func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p.Value(key).(bool); ok {
		return v
	}
	return fallback
}

// Number returns the value under key when it is numeric.
func (p Props) Number(key string) (float64, bool) {
	return asNumber(p.Value(key))
}

// OptString returns nil when key is absent and the coerced string (fallback ""
// for mistyped values) when it is present.
func (p Props) OptString(key string) *string {
	if !p.Has(key) {
		return nil
	}
	v := p.String(key, "")
	return &v
}

// OptBool returns nil when key is absent and the coerced boolean when present.
func (p Props) OptBool(key string, fallback bool) *bool {
	if !p.Has(key) {
		return nil
	}
	v := p.Bool(key, fallback)
	return &v
}

// OptNumber returns nil unless key holds a numeric value.
func (p Props) OptNumber(key string) *float64 {
	v, ok := p.Number(key)
	if !ok {
		return nil
	}
	return &v
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
