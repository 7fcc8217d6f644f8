package spanschema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// tokenize splits template into its literal segments around wildcard markers, turning
// "%%" into "%". A template without a marker yields one segment. Malformed directives
// are kept as literal text and reported through the returned error.
func tokenize(template string) ([]string, error) {
	var (
		segments []string
		literal  strings.Builder
		err      error
	)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			literal.WriteByte(c)
			continue
		}
		if i+1 >= len(template) {
			if err == nil {
				err = fmt.Errorf("%w: %q has a dangling %%", ErrMalformedTemplate, template)
			}
			literal.WriteByte(c)
			continue
		}
		switch template[i+1] {
		case 's':
			segments = append(segments, literal.String())
			literal.Reset()
		case '%':
			literal.WriteByte('%')
		default:
			if err == nil {
				err = fmt.Errorf("%w: %q uses %%%c, only %s is allowed", ErrMalformedTemplate, template, template[i+1], Wildcard)
			}
			literal.WriteByte(c)
			continue
		}
		i++
	}
	return append(segments, literal.String()), err
}

// Segments returns the literal text of template around its wildcard markers, with "%%"
// unescaped. len(Segments(t)) - 1 is the number of markers in t.
func Segments(template string) []string {
	segments, _ := tokenize(template)
	return segments
}

// ValidateTemplate checks that s contains at most one wildcard marker and no other
// formatting directive. "%%" is accepted as an escaped percent sign.
func ValidateTemplate(s string) error {
	segments, err := tokenize(s)
	if err != nil {
		return err
	}
	if wildcards := len(segments) - 1; wildcards > 1 {
		return fmt.Errorf("%w: %q has %d wildcards, at most one is allowed", ErrMalformedTemplate, s, wildcards)
	}
	return nil
}

// HasWildcard reports whether s contains the wildcard marker. An escaped "%%s" is a
// literal "%s", not a marker.
func HasWildcard(s string) bool {
	return len(Segments(s)) > 1
}

// Validate checks the invariants of a schema: a non-empty well formed name, non-nil
// comparable descriptors, unique tag keys and well formed tag key and event templates. All
// problems are reported at once.
func Validate(s Schema) error {
	var errs []error

	name := s.Name()
	if name == "" {
		errs = append(errs, ErrEmptyName)
	} else if err := ValidateTemplate(name); err != nil {
		errs = append(errs, fmt.Errorf("name: %w", err))
	}

	seen := make(map[string]struct{}, len(s.TagKeys()))
	for i, k := range s.TagKeys() {
		if err := checkDescriptor(k); err != nil {
			errs = append(errs, fmt.Errorf("tag key %d: %w", i, err))
			continue
		}
		key := k.Key()
		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateTagKey, key))
			continue
		}
		seen[key] = struct{}{}
		if err := ValidateTemplate(key); err != nil {
			errs = append(errs, fmt.Errorf("tag key: %w", err))
		}
	}

	for i, e := range s.Events() {
		if err := checkDescriptor(e); err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
			continue
		}
		if err := ValidateTemplate(e.Value()); err != nil {
			errs = append(errs, fmt.Errorf("event: %w", err))
		}
	}

	return errors.Join(errs...)
}

func checkDescriptor(d interface{}) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if !Comparable(d) {
		return fmt.Errorf("%w: %T", ErrUncomparableDescriptor, d)
	}
	return nil
}

// Comparable reports whether d can be compared with == without panicking.
func Comparable(d interface{}) bool {
	return d != nil && reflect.TypeOf(d).Comparable()
}

// MustValidate is like Validate but panics on an invalid schema. It is meant for
// package-level schema declarations.
func MustValidate(s Schema) Schema {
	if err := Validate(s); err != nil {
		panic(fmt.Sprintf("spanschema: invalid schema %q: %v", s.Name(), err))
	}
	return s
}
