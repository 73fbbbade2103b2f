// Package renderer turns engine reports into markdown strings. The cmd
// package decides how they reach the terminal.
package renderer

import (
	"github.com/aqualedger/aqualedger"
)

// kg formats a fish weight for display.
func kg(q aqualedger.Quantity) string { return q.String() + " kg" }

// rate derives the per-kg sale rate from a record's total price. The
// stored price is the whole sale amount; the rate exists only for display.
func rate(r aqualedger.CatchRecord) string {
	if r.Quantity.IsZero() {
		return "-"
	}
	return r.Price.Div(r.Quantity).String() + "/kg"
}
