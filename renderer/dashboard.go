package renderer

import (
	"bytes"
	"fmt"

	"github.com/aqualedger/aqualedger"
	md "github.com/nao1215/markdown"
)

func DashboardMarkdown(r *aqualedger.DashboardReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	switch r.Window {
	case aqualedger.Weekly:
		doc.H1(fmt.Sprintf("Weekly Dashboard since %s", r.StartKey))
	default:
		doc.H1(fmt.Sprintf("Daily Dashboard for %s", r.StartKey))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Catch"), md.Bold(kg(r.TotalQty))},
		Rows: [][]string{
			{"Total Earnings", r.TotalEarn.String()},
		},
	})

	if len(r.Series) > 0 {
		doc.H2("Catch by Day")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Day", "Catch", "Earnings"},
		}
		for _, point := range r.Series {
			table.Rows = append(table.Rows, []string{
				point.Day,
				kg(point.Qty),
				point.Earn.String(),
			})
		}
		doc.Table(table)
	}

	if len(r.Species) > 0 {
		doc.H2("Catch by Species")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Species", "Catch"},
		}
		for _, entry := range r.Species {
			table.Rows = append(table.Rows, []string{
				entry.Name,
				entry.Total.String() + " kg",
			})
		}
		doc.Table(table)
	}

	if len(r.Top) > 0 {
		doc.H2("Top Buyers")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Buyer", "Earnings"},
		}
		for _, entry := range r.Top {
			table.Rows = append(table.Rows, []string{
				entry.Name,
				aqualedger.M(entry.Total).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
