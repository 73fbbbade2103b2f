package renderer

import (
	"strings"
	"testing"

	"github.com/aqualedger/aqualedger"
)

func record(id int64, day, species string, qty float64, price int, buyer string) aqualedger.CatchRecord {
	return aqualedger.CatchRecord{
		ID:       id,
		Date:     day + "T10:00:00",
		Species:  species,
		Quantity: aqualedger.Q(qty),
		Price:    aqualedger.M(price),
		Buyer:    buyer,
	}
}

func TestHistoryMarkdown(t *testing.T) {
	report := aqualedger.NewHistoryReport([]aqualedger.CatchRecord{
		record(2, "2025-06-03", "Omena", 3, 450, "Mama Atieno"),
		record(1, "2025-06-02", "Tilapia", 12.5, 1500, "Local market"),
	})
	got := HistoryMarkdown(report)

	for _, want := range []string{
		"# Catch History",
		"| Id |",
		"| 2 | 2025-06-03 | Omena | 3 kg |",
		"| 1 | 2025-06-02 | Tilapia | 12.5 kg |",
		"Mama Atieno",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdownEmpty(t *testing.T) {
	got := HistoryMarkdown(aqualedger.NewHistoryReport(nil))
	if !strings.Contains(got, "No catches logged yet.") {
		t.Errorf("empty history not handled:\n%s", got)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	records := []aqualedger.CatchRecord{
		record(1, aqualedger.TodayKey(), "Tilapia", 5, 800, "Amina"),
		record(2, aqualedger.TodayKey(), "Omena", 2, 300, "Kioko"),
	}
	got := DashboardMarkdown(aqualedger.NewDashboardReport(records, aqualedger.Daily))

	for _, want := range []string{
		"# Daily Dashboard for " + aqualedger.TodayKey(),
		"## Catch by Day",
		"## Catch by Species",
		"## Top Buyers",
		"7 kg",
		"Tilapia",
		"Amina",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestEntryMarkdownDerivesRate(t *testing.T) {
	r := record(7, "2025-06-03", "Tilapia", 12.5, 1500, "Local market")
	got := EntryMarkdown(r)

	if !strings.Contains(got, "# Catch #7 on 2025-06-03") {
		t.Errorf("missing title in:\n%s", got)
	}
	// 1500 over 12.5 kg
	if !strings.Contains(got, "/kg") {
		t.Errorf("missing derived rate in:\n%s", got)
	}
	if strings.Contains(got, "M-Pesa") {
		t.Errorf("blank mpesa code should not render a row:\n%s", got)
	}
}

func TestValidityMarkdown(t *testing.T) {
	v := aqualedger.Validate(aqualedger.RecordFields{
		Species:  "T",
		Quantity: "0",
		Price:    "1500",
		Buyer:    "Local market",
	})
	got := ValidityMarkdown(v)

	if !strings.Contains(got, "species") || !strings.Contains(got, "quantity") {
		t.Errorf("invalid fields not listed:\n%s", got)
	}
	if strings.Contains(got, "buyer") {
		t.Errorf("valid field listed as invalid:\n%s", got)
	}
}
