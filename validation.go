package aqualedger

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names the editable fields of a record for per-field validation
// feedback.
type Field int

const (
	FieldSpecies Field = iota
	FieldQuantity
	FieldPrice
	FieldBuyer
	FieldMpesa
)

func (f Field) String() string {
	switch f {
	case FieldSpecies:
		return "species"
	case FieldQuantity:
		return "quantity"
	case FieldPrice:
		return "price"
	case FieldBuyer:
		return "buyer"
	case FieldMpesa:
		return "mpesa_code"
	default:
		return "unknown"
	}
}

// Fields lists every validated field, in form order.
var Fields = []Field{FieldSpecies, FieldQuantity, FieldPrice, FieldBuyer, FieldMpesa}

var (
	// posNumberRE is a strictly-positive-decimal shape: digits with an
	// optional fractional part, no sign, no exponent. "0" and "0.0" pass
	// the shape but fail the > 0 check in IsPosNumber.
	posNumberRE = regexp.MustCompile(`^\d+(\.\d+)?$`)

	// mpesaRE accepts exactly 10 to 13 uppercase letters or digits.
	mpesaRE = regexp.MustCompile(`^[A-Z0-9]{10,13}$`)
)

var errNotPositiveDecimal = errors.New("not a strictly positive decimal")

// IsPosNumber reports whether s matches the strictly-positive-decimal
// pattern and parses to a value greater than zero. An empty or non-numeric
// string is invalid, not merely unset.
func IsPosNumber(s string) bool {
	_, err := ParsePositiveDecimal(s)
	return err == nil
}

// ParsePositiveDecimal parses s under the same rule IsPosNumber checks and
// returns the exact value.
func ParsePositiveDecimal(s string) (decimal.Decimal, error) {
	if !posNumberRE.MatchString(s) {
		return decimal.Decimal{}, errNotPositiveDecimal
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, errNotPositiveDecimal
	}
	return d, nil
}

func upper(s string) string { return strings.ToUpper(s) }

// Validity is the outcome of validating a candidate record's fields.
// PerField drives per-field feedback; FormOK gates submission and is true
// iff every field is valid.
type Validity struct {
	PerField map[Field]bool
	FormOK   bool
}

// Invalid lists the invalid fields in form order, for error messages.
func (v Validity) Invalid() []Field {
	var out []Field
	for _, f := range Fields {
		if !v.PerField[f] {
			out = append(out, f)
		}
	}
	return out
}

// Validate applies the field-level ruleset to a candidate record's fields.
// The same rules apply whether the fields originate from a blank creation
// form or a pre-populated edit draft:
//
//   - species, buyer: trimmed length strictly greater than 1
//   - quantity, price: strictly positive decimal (pattern and value)
//   - mpesa_code: optional, but when present must be exactly 10-13
//     uppercase letters/digits after case normalization
func Validate(fields RecordFields) Validity {
	fields = fields.Normalized()
	v := Validity{PerField: map[Field]bool{
		FieldSpecies:  len(strings.TrimSpace(fields.Species)) > 1,
		FieldQuantity: IsPosNumber(fields.Quantity),
		FieldPrice:    IsPosNumber(fields.Price),
		FieldBuyer:    len(strings.TrimSpace(fields.Buyer)) > 1,
		FieldMpesa:    fields.MpesaCode == "" || mpesaRE.MatchString(fields.MpesaCode),
	}}
	v.FormOK = true
	for _, ok := range v.PerField {
		v.FormOK = v.FormOK && ok
	}
	return v
}
