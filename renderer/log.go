package renderer

import (
	"bytes"
	"fmt"

	"github.com/aqualedger/aqualedger"
	md "github.com/nao1215/markdown"
)

// EntryMarkdown previews a single stored record, shown after logging or
// editing a catch.
func EntryMarkdown(r aqualedger.CatchRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Catch #%d on %s", r.ID, r.DayKey()))

	rows := [][]string{
		{"Catch", kg(r.Quantity)},
		{"Sale", r.Price.String()},
		{"Rate", rate(r)},
		{"Buyer", r.Buyer},
	}
	if r.MpesaCode != "" {
		rows = append(rows, []string{"M-Pesa", r.MpesaCode})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Species"), md.Bold(r.Species)},
		Rows:      rows,
	})

	return doc.String()
}

// ValidityMarkdown lists the per-field outcome of a rejected submission.
func ValidityMarkdown(v aqualedger.Validity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Invalid fields")
	var items []string
	for _, f := range v.Invalid() {
		items = append(items, fmt.Sprintf("%s: %s", f, fieldHint(f)))
	}
	doc.BulletList(items...)

	return doc.String()
}

func fieldHint(f aqualedger.Field) string {
	switch f {
	case aqualedger.FieldSpecies, aqualedger.FieldBuyer:
		return "need at least 2 characters"
	case aqualedger.FieldQuantity, aqualedger.FieldPrice:
		return "must be a number greater than 0"
	case aqualedger.FieldMpesa:
		return "must be 10 to 13 letters and digits"
	default:
		return "invalid"
	}
}
