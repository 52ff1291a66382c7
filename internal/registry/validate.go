package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/gocty"
)

// inputTag must match the tag read by the argument converter.
const inputTag = "tickseq"

// Validate checks that every registered kind can be decoded from a script:
// it needs both functions, its input must be a pointer to a struct, and
// every tagged field must have a type the argument decoder understands.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, kind := range r.Kinds() {
		def := r.definitions[kind]
		if def.NewInput == nil || def.New == nil {
			errs = append(errs, fmt.Sprintf("action '%s': definition needs both NewInput and New", kind))
			continue
		}

		raw := def.NewInput()
		input := reflect.ValueOf(raw)
		if input.Kind() != reflect.Ptr || input.IsNil() || input.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("action '%s': NewInput must return a non-nil pointer to a struct, got %T", kind, raw))
			continue
		}

		inputType := input.Elem().Type()
		arguments := 0
		for i := 0; i < inputType.NumField(); i++ {
			field := inputType.Field(i)
			tag := strings.Split(field.Tag.Get(inputTag), ",")[0]
			if !field.IsExported() || tag == "" || tag == "-" {
				continue
			}
			arguments++
			if _, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface()); err != nil {
				errs = append(errs, fmt.Sprintf("action '%s', argument '%s': unsupported Go field type %s: %v", kind, tag, field.Type, err))
			}
		}
		logger.Debug("Validated action kind.", "kind", kind, "arguments", arguments)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
