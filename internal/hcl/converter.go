package hcl

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TagName is the struct tag that maps an input field to an argument name.
// `tickseq:"name"` marks a required argument, `tickseq:"name,optional"`
// an optional one that keeps the field's current value when omitted.
const TagName = "tickseq"

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// field is one tagged field of an input struct.
type field struct {
	value    reflect.Value
	optional bool
}

// DecodeArguments evaluates HCL expressions and populates the provided Go
// struct using reflection.
func (c *Converter) DecodeArguments(ctx context.Context, inputStruct any, args map[string]hcl.Expression) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting HCL argument decoding.", "arguments", len(args))

	structVal := reflect.ValueOf(inputStruct)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("inputStruct must be a non-nil pointer to a struct, got %T", inputStruct)
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	fields := make(map[string]field)
	var order []string
	for i := 0; i < structType.NumField(); i++ {
		sf := structType.Field(i)
		tag := sf.Tag.Get(TagName)
		if !sf.IsExported() || tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		fields[parts[0]] = field{
			value:    structVal.Field(i),
			optional: len(parts) > 1 && parts[1] == "optional",
		}
		order = append(order, parts[0])
	}

	var unknown []string
	for name := range args {
		if _, ok := fields[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	for _, name := range order {
		f := fields[name]
		expr, provided := args[name]
		if !provided {
			if !f.optional {
				return fmt.Errorf("missing required argument %q", name)
			}
			continue
		}

		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate argument '%s': %w", name, diags)
		}
		if err := c.decode(ctx, val, f.value.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to decode argument '%s': %w", name, err)
		}
	}

	logger.Debug("Finished HCL argument decoding successfully.")
	return nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}

	impliedType, err := gocty.ImpliedType(reflect.ValueOf(goVal).Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", fmt.Sprintf("%T", goVal), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
