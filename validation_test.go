package aqualedger

import "testing"

func TestIsPosNumber(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"0.5", true},
		{"12.75", true},
		{"0", false},     // matches the pattern but is not > 0
		{"0.0", false},
		{"-1", false},    // sign not allowed
		{"+1", false},
		{"abc", false},
		{"", false},      // empty is invalid, not merely unset
		{"1e3", false},   // no exponent
		{"1.", false},
		{".5", false},
		{"3,5", false},
		{" 5", false},
	}
	for _, tc := range testCases {
		if got := IsPosNumber(tc.in); got != tc.want {
			t.Errorf("IsPosNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMpesaPattern(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"QJD6K4A2X0", true},     // 10 chars
		{"QJD6K4A2X0ABC", true},  // 13 chars
		{"AB12", false},          // too short
		{"QJD6K4A2X0ABCD", false}, // too long
		{"qjd6k4a2x0", false},    // lowercase fails until normalized
		{"QJD6K4A2X!", false},
	}
	for _, tc := range testCases {
		if got := mpesaRE.MatchString(tc.in); got != tc.want {
			t.Errorf("mpesaRE.MatchString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func validFields() RecordFields {
	return RecordFields{
		Species:  "Tilapia",
		Quantity: "12.5",
		Price:    "1500",
		Buyer:    "Local market",
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*RecordFields)
		wantOK   bool
		badField Field
	}{
		{
			name:   "all fields valid, mpesa absent",
			mutate: func(f *RecordFields) {},
			wantOK: true,
		},
		{
			name:   "valid mpesa code",
			mutate: func(f *RecordFields) { f.MpesaCode = "QJD6K4A2X0" },
			wantOK: true,
		},
		{
			name:   "lowercase mpesa is normalized, never rejected for case",
			mutate: func(f *RecordFields) { f.MpesaCode = "qjd6k4a2x0" },
			wantOK: true,
		},
		{
			name:     "single-char species",
			mutate:   func(f *RecordFields) { f.Species = "T" },
			wantOK:   false,
			badField: FieldSpecies,
		},
		{
			name:     "species of whitespace",
			mutate:   func(f *RecordFields) { f.Species = "  t  " },
			wantOK:   false,
			badField: FieldSpecies,
		},
		{
			name:     "zero quantity",
			mutate:   func(f *RecordFields) { f.Quantity = "0" },
			wantOK:   false,
			badField: FieldQuantity,
		},
		{
			name:     "non-numeric price",
			mutate:   func(f *RecordFields) { f.Price = "abc" },
			wantOK:   false,
			badField: FieldPrice,
		},
		{
			name:     "empty buyer",
			mutate:   func(f *RecordFields) { f.Buyer = "" },
			wantOK:   false,
			badField: FieldBuyer,
		},
		{
			name:     "short mpesa code",
			mutate:   func(f *RecordFields) { f.MpesaCode = "AB12" },
			wantOK:   false,
			badField: FieldMpesa,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			tc.mutate(&fields)
			v := Validate(fields)
			if v.FormOK != tc.wantOK {
				t.Fatalf("FormOK = %v, want %v (per-field: %v)", v.FormOK, tc.wantOK, v.PerField)
			}
			if !tc.wantOK && v.PerField[tc.badField] {
				t.Errorf("PerField[%v] = true, want false", tc.badField)
			}
			if len(v.PerField) != len(Fields) {
				t.Errorf("PerField has %d entries, want %d", len(v.PerField), len(Fields))
			}
		})
	}
}

// Edit drafts run through the exact same ruleset as creation forms.
func TestValidateEditDraft(t *testing.T) {
	record := CatchRecord{
		ID:       7,
		Date:     "2025-06-03T08:15:00",
		Species:  "Omena",
		Quantity: Q(3.5),
		Price:    M(420),
		Buyer:    "Mama Atieno",
	}
	draft := FieldsOf(record)
	if v := Validate(draft); !v.FormOK {
		t.Fatalf("draft of a stored record should validate, got per-field %v", v.PerField)
	}
	draft.Quantity = "-2"
	if v := Validate(draft); v.FormOK || v.PerField[FieldQuantity] {
		t.Errorf("negative quantity must invalidate the draft")
	}
}
