package renderer

import (
	"bytes"
	"fmt"

	"github.com/aqualedger/aqualedger"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *aqualedger.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Period", "Catch", "Earnings"},
		Rows: [][]string{
			{"Today", kg(s.TodayQty), s.TodayEarn.String()},
			{"This Week", kg(s.WeekQty), s.WeekEarn.String()},
		},
	})

	return doc.String()
}
