// Package document defines the affidavit and wrong-transfer form variants
// as data: one FormSpec per document type, listing its fields, validation
// rules and submit-time normalization. A single pipeline validates,
// normalizes and renders every variant instead of duplicating form logic
// per type.
package document

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mercibizhub/bizhub-api/pkg/apperror"
	"github.com/mercibizhub/bizhub-api/pkg/format"
)

// Transform is the submit-time normalization applied to a field value.
type Transform int

const (
	// TransformNone leaves structured values (dates, account numbers)
	// untouched.
	TransformNone Transform = iota
	// TransformUpper uppercases identity fields such as full legal names
	// and authority names.
	TransformUpper
	// TransformTitle title-cases descriptive fields such as state, LGA,
	// religion, nationality and gender.
	TransformTitle
	// TransformAmount normalizes a money string with FormatAmount.
	TransformAmount
)

// FieldSpec describes one field of a document form.
type FieldSpec struct {
	Name      string
	Label     string
	Required  bool
	Pattern   *regexp.Regexp
	Transform Transform

	// DateWordsOf names a sibling dd/mm/yyyy field this field is derived
	// from when left empty. Derivation only happens once the source fully
	// matches the date pattern.
	DateWordsOf string
	// AmountWordsOf names a sibling amount field this field is spelled
	// out from when left empty.
	AmountWordsOf string
}

// FormSpec describes one document type: its fields and the default name
// of the generated file. DefaultOutputName may reference normalized field
// values with {field} placeholders.
type FormSpec struct {
	Slug              string      `json:"slug"`
	Title             string      `json:"title"`
	DefaultOutputName string      `json:"default_output_name"`
	Fields            []FieldSpec `json:"-"`
}

// FieldNames lists the field names of the form, in declaration order.
func (f *FormSpec) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Validate checks required fields and patterns. It returns one FieldError
// per offending field; an empty slice means the form may be submitted.
func (f *FormSpec) Validate(values map[string]string) []apperror.FieldError {
	var errs []apperror.FieldError
	for _, field := range f.Fields {
		value := strings.TrimSpace(values[field.Name])

		if value == "" {
			if field.Required && field.DateWordsOf == "" && field.AmountWordsOf == "" {
				errs = append(errs, apperror.FieldError{
					Field:   field.Name,
					Message: field.Label + " is required",
				})
			}
			continue
		}

		if field.Pattern != nil && !field.Pattern.MatchString(value) {
			errs = append(errs, apperror.FieldError{
				Field:   field.Name,
				Message: field.Label + " is not in the expected format",
			})
		}
	}
	return errs
}

// Normalize applies the submit-time transforms and derives the *-InWords
// fields, producing the flat payload handed to the template renderer.
// Unknown keys in values are dropped.
func (f *FormSpec) Normalize(values map[string]string) map[string]string {
	words := format.NewWordsConverter()

	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		value := strings.TrimSpace(values[field.Name])

		if value == "" {
			switch {
			case field.DateWordsOf != "":
				value = format.DateInWords(strings.TrimSpace(values[field.DateWordsOf]))
			case field.AmountWordsOf != "":
				if kobo, ok := parseAmount(values[field.AmountWordsOf]); ok {
					value = words.AmountInWords(kobo)
				}
			}
			out[field.Name] = value
			continue
		}

		switch field.Transform {
		case TransformUpper:
			value = strings.ToUpper(value)
		case TransformTitle:
			value = format.CapitalizeEveryWord(strings.ToLower(value))
		case TransformAmount:
			value = format.FormatAmount(value)
		}
		out[field.Name] = value
	}
	return out
}

// OutputName resolves the default output file name, interpolating
// {field} references with normalized values.
func (f *FormSpec) OutputName(normalized map[string]string) string {
	name := f.DefaultOutputName
	for key, value := range normalized {
		name = strings.ReplaceAll(name, "{"+key+"}", value)
	}
	return name
}

// parseAmount converts a raw money string to kobo. Fractional digits
// beyond two are truncated, matching FormatAmount.
func parseAmount(raw string) (int64, bool) {
	numeric := format.FilterNonNumbers(strings.TrimSpace(raw))
	if numeric == "" || numeric == "." {
		return 0, false
	}

	intPart := numeric
	fracPart := ""
	if i := strings.IndexByte(numeric, '.'); i >= 0 {
		intPart = numeric[:i]
		fracPart = numeric[i+1:]
		if len(fracPart) > 2 {
			fracPart = fracPart[:2]
		}
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	major := int64(0)
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, false
		}
		major = v
	}
	minor, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, false
	}

	// The kobo conversion must not overflow int64.
	if major > (math.MaxInt64-minor)/100 {
		return 0, false
	}

	return major*100 + minor, true
}
