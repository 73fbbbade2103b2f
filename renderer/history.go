package renderer

import (
	"bytes"
	"fmt"

	"github.com/aqualedger/aqualedger"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(r *aqualedger.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Catch History")

	if len(r.Records) == 0 {
		doc.PlainText("No catches logged yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Id", "Day", "Species", "Catch", "Price", "Buyer", "M-Pesa"},
	}
	for _, rec := range r.Records {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.DayKey(),
			rec.Species,
			kg(rec.Quantity),
			rec.Price.String(),
			rec.Buyer,
			rec.MpesaCode,
		})
	}
	doc.Table(table)

	return doc.String()
}
