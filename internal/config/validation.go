// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/pleaselabs/please/pkg/config"
)

var (
	// ErrInvalidConfig is returned when a document fails schema validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTypeMismatch is returned when a field has the wrong structural type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidEnum is returned when an enum field has an unknown value.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidValue is returned when a well-typed field violates a value
	// constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// Validator validates raw configuration documents against the schema and
// normalizes them into fully-defaulted Config values.
type Validator struct {
	schema []field
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{schema: configSchema()}
}

// Validate walks the schema against the raw document. Well-typed values are
// kept, absent (or null) fields get their default at that exact nesting
// depth, unknown keys are ignored. Any wrong-typed field fails the whole
// call with a path-qualified error per offending field; there is no partial
// success. A nil document validates like an empty one.
func (v *Validator) Validate(raw map[string]any) (*config.Config, error) {
	merged := make(map[string]any, len(v.schema))

	var validationErrors []error

	walkFields("", v.schema, raw, merged, &validationErrors)

	if len(validationErrors) > 0 {
		return nil, errors.Mark(
			errors.Wrapf(
				combineErrors(validationErrors),
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			ErrInvalidConfig,
		)
	}

	return unmarshalConfig(merged)
}

// walkFields validates one schema level of the raw document into merged.
func walkFields(prefix string, fields []field, raw, merged map[string]any, errs *[]error) {
	for _, f := range fields {
		path := joinPath(prefix, f.name)

		var (
			value   any
			present bool
		)

		if raw != nil {
			value, present = raw[f.name]
		}

		// null is treated the same as absent.
		if value == nil {
			present = false
		}

		if !present {
			if f.optional {
				continue
			}

			if f.kind == kindSection {
				merged[f.name] = defaultsMap(f.children)
			} else {
				merged[f.name] = f.def
			}

			continue
		}

		walkField(path, f, value, merged, errs)
	}
}

// walkField validates one present field value against its descriptor.
func walkField(path string, f field, value any, merged map[string]any, errs *[]error) {
	switch f.kind {
	case kindSection:
		section, ok := value.(map[string]any)
		if !ok {
			*errs = append(*errs, typeError(path, "mapping", value))

			return
		}

		child := make(map[string]any, len(f.children))
		walkFields(path, f.children, section, child, errs)
		merged[f.name] = child

	case kindBool:
		b, ok := value.(bool)
		if !ok {
			*errs = append(*errs, typeError(path, "boolean", value))

			return
		}

		merged[f.name] = b

	case kindInt:
		n, ok := intValue(value)
		if !ok {
			*errs = append(*errs, typeError(path, "integer", value))

			return
		}

		if f.check != nil {
			if err := f.check(path, n); err != nil {
				*errs = append(*errs, err)

				return
			}
		}

		merged[f.name] = n

	case kindString:
		s, ok := value.(string)
		if !ok {
			*errs = append(*errs, typeError(path, "string", value))

			return
		}

		merged[f.name] = s

	case kindEnum:
		s, ok := value.(string)
		if !ok {
			*errs = append(*errs, typeError(path, "string", value))

			return
		}

		if !enumContains(f.enum, s) {
			*errs = append(*errs, errors.Wrapf(
				ErrInvalidEnum,
				"%s: must be one of %v, got %q",
				path,
				f.enum,
				s,
			))

			return
		}

		merged[f.name] = s

	case kindStringList:
		list, err := stringListValue(path, value)
		if err != nil {
			*errs = append(*errs, err)

			return
		}

		merged[f.name] = list
	}
}

// typeError builds a path-qualified type mismatch error.
func typeError(path, expected string, value any) error {
	return errors.Wrapf(
		ErrTypeMismatch,
		"%s: expected %s, got %s",
		path,
		expected,
		typeName(value),
	)
}

// typeName names a raw document value's type the way validation messages
// describe it.
func typeName(value any) string {
	switch value.(type) {
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case string:
		return "string"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// intValue extracts an int from the integer types the YAML decoder produces.
func intValue(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// stringListValue validates a sequence-of-strings field.
func stringListValue(path string, value any) ([]string, error) {
	switch list := value.(type) {
	case []string:
		return list, nil

	case []any:
		out := make([]string, 0, len(list))

		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(
					ErrTypeMismatch,
					"%s[%d]: expected string, got %s",
					path,
					i,
					typeName(item),
				)
			}

			out = append(out, s)
		}

		return out, nil

	default:
		return nil, typeError(path, "sequence", value)
	}
}

// enumContains reports whether the allowed values contain s. Matching is
// case-sensitive.
func enumContains(allowed []string, s string) bool {
	return slices.Contains(allowed, s)
}

// combineErrors combines multiple errors into a single error.
func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
