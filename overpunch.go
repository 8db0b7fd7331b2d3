package overpunch

import (
	"github.com/calebcase/overpunch/decimal"
	"github.com/calebcase/overpunch/encoding"
	"github.com/calebcase/overpunch/picture"
)

// Extract decodes raw with the standard overpunch encoding.
func Extract(raw string, scale int) (decimal.Decimal, error) {
	return ExtractWithEncoding(raw, scale, encoding.Standard{})
}

// Format encodes d with the standard overpunch encoding.
func Format(d decimal.Decimal, scale int) (string, error) {
	return FormatWithEncoding(d, scale, encoding.Standard{})
}

// ConvertFromSignedFormat decodes raw with the scale described by the picture
// clause format.
func ConvertFromSignedFormat(raw, format string) (decimal.Decimal, error) {
	s, err := NewSchema(format, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return s.Extract(raw)
}

// ConvertToSignedFormat encodes d with the scale described by the picture
// clause format.
func ConvertToSignedFormat(d decimal.Decimal, format string) (string, error) {
	s, err := NewSchema(format, nil)
	if err != nil {
		return "", err
	}

	return s.Format(d)
}

// Schema describes the layout of a single field.
type Schema struct {
	Scale int

	// Encoding is the sign table. Nil means encoding.Standard.
	Encoding encoding.Encoding
}

// NewSchema returns a schema with the scale described by the picture clause
// format.
func NewSchema(format string, enc encoding.Encoding) (s Schema, err error) {
	scale, err := picture.Scale(format)
	if err != nil {
		return Schema{}, Error.Wrap(err)
	}

	return Schema{
		Scale:    scale,
		Encoding: enc,
	}, nil
}

// Extract decodes raw according to the schema.
func (s Schema) Extract(raw string) (decimal.Decimal, error) {
	return ExtractWithEncoding(raw, s.Scale, s.Encoding)
}

// Format encodes d according to the schema.
func (s Schema) Format(d decimal.Decimal) (string, error) {
	return FormatWithEncoding(d, s.Scale, s.Encoding)
}
