package mcptool

import (
	"fmt"
	"math"

	"github.com/mockdesk/mockdesk/internal/domain"
)

// typeName maps a decoded JSON argument to the type word used in parameter
// error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func typeError(key, want string, got any) error {
	return fmt.Errorf("%w: %s must be a %s, got %s", domain.ErrInvalidParameter, key, want, typeName(got))
}

func missingError(key string) error {
	return fmt.Errorf("%w: %s is required", domain.ErrInvalidParameter, key)
}

// stringArg reads an optional string argument, returning fallback when the
// key is absent. A present value of any other type is a parameter error, not
// a silent coercion.
func stringArg(args map[string]any, key, fallback string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(key, "string", v)
	}
	return s, nil
}

// requiredString reads a mandatory string argument.
func requiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", missingError(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(key, "string", v)
	}
	return s, nil
}

// stringPtrArg reads an optional string argument as a pointer, nil when
// absent. Used for partial-update payloads where absence means "unchanged".
func stringPtrArg(args map[string]any, key string) (*string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, typeError(key, "string", v)
	}
	return &s, nil
}

// intArg reads an optional integer argument. JSON numbers decode as float64;
// fractional values are rejected rather than truncated.
func intArg(args map[string]any, key string, fallback int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, typeError(key, "integer", v)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s must be a integer, got number", domain.ErrInvalidParameter, key)
	}
	return int(f), nil
}

// requiredInt64 reads a mandatory integer argument as int64.
func requiredInt64(args map[string]any, key string) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, missingError(key)
	}
	f, okF := v.(float64)
	if !okF || f != math.Trunc(f) {
		return 0, typeError(key, "integer", v)
	}
	return int64(f), nil
}

// int64PtrArg reads an optional integer argument as a pointer, nil when absent.
func int64PtrArg(args map[string]any, key string) (*int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, okF := v.(float64)
	if !okF || f != math.Trunc(f) {
		return nil, typeError(key, "integer", v)
	}
	n := int64(f)
	return &n, nil
}

// boolPtrArg reads an optional boolean argument as a pointer, nil when absent.
func boolPtrArg(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, typeError(key, "boolean", v)
	}
	return &b, nil
}

// stringSliceArg reads an optional array-of-strings argument, nil when absent.
func stringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, typeError(key, "array", v)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, typeError(key, "array of strings", v)
		}
		out = append(out, s)
	}
	return out, nil
}

// stringMapArg reads an optional object-of-strings argument, nil when absent.
func stringMapArg(args map[string]any, key string) (map[string]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, typeError(key, "object", v)
	}
	out := make(map[string]string, len(raw))
	for k, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, typeError(key, "object of strings", v)
		}
		out[k] = s
	}
	return out, nil
}
