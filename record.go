package aqualedger

import (
	"encoding/json"
	"fmt"
)

// CatchRecord is one logged sale event, exactly as the server stores it.
//
// The id and date are assigned by the server at creation and are immutable
// afterwards; the client never invents either. The date is kept as the
// server's ISO-8601 timestamp string and is the sole time axis.
type CatchRecord struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Species   string   `json:"species"`
	Quantity  Quantity `json:"quantity"`
	Price     Money    `json:"price"` // total sale amount for the entry, not a per-kg rate
	Buyer     string   `json:"buyer"`
	MpesaCode string   `json:"mpesa_code,omitempty"`
}

// DayKey truncates the record's timestamp to its calendar day
// (the first 10 characters, "YYYY-MM-DD"). The key stays in the stored
// timezone representation and is never re-zoned; keys compare in date order
// under plain string comparison.
func (r CatchRecord) DayKey() string {
	if len(r.Date) >= len(DateFormat) {
		return r.Date[:len(DateFormat)]
	}
	return r.Date
}

// RecordFields holds the editable fields of a record as the user entered
// them. Amounts stay textual until validated: the Validator distinguishes
// "empty", "non-numeric" and "not strictly positive", which a parsed number
// cannot express.
type RecordFields struct {
	Species   string
	Quantity  string
	Price     string
	Buyer     string
	MpesaCode string // optional
}

// Normalized returns a copy with the M-Pesa code uppercased. Normalization
// happens before validation and before submission, so the Validator never
// rejects a code solely due to case.
func (f RecordFields) Normalized() RecordFields {
	f.MpesaCode = upper(f.MpesaCode)
	return f
}

// FieldsOf returns an edit draft pre-populated from an existing record.
func FieldsOf(r CatchRecord) RecordFields {
	return RecordFields{
		Species:   r.Species,
		Quantity:  r.Quantity.String(),
		Price:     r.Price.Decimal().String(),
		Buyer:     r.Buyer,
		MpesaCode: r.MpesaCode,
	}
}

// MarshalJSON encodes the editable-field request body: amounts as JSON
// numbers, mpesa_code uppercase or an explicit null when blank.
func (f RecordFields) MarshalJSON() ([]byte, error) {
	qty, err := ParsePositiveDecimal(f.Quantity)
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", f.Quantity, err)
	}
	price, err := ParsePositiveDecimal(f.Price)
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", f.Price, err)
	}

	var w jsonObjectWriter
	w.Append("species", f.Species)
	w.Append("quantity", qty)
	w.Append("price", price)
	w.Append("buyer", f.Buyer)
	if code := upper(f.MpesaCode); code != "" {
		w.Append("mpesa_code", code)
	} else {
		w.Append("mpesa_code", nil)
	}
	return w.MarshalJSON()
}

// apply returns a copy of r carrying the draft's field values, used for the
// optimistic write-back after a successful update. Server-owned id and date
// are preserved.
func (f RecordFields) apply(r CatchRecord) (CatchRecord, error) {
	qty, err := ParsePositiveDecimal(f.Quantity)
	if err != nil {
		return r, fmt.Errorf("quantity %q: %w", f.Quantity, err)
	}
	price, err := ParsePositiveDecimal(f.Price)
	if err != nil {
		return r, fmt.Errorf("price %q: %w", f.Price, err)
	}
	r.Species = f.Species
	r.Quantity = Q(qty)
	r.Price = M(price)
	r.Buyer = f.Buyer
	r.MpesaCode = upper(f.MpesaCode)
	return r, nil
}

var _ json.Marshaler = RecordFields{}
