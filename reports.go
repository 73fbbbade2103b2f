package aqualedger

// TopBuyers is the ranking size shown on the dashboard.
const TopBuyers = 5

// DashboardReport provides the at-a-glance view of a record collection for
// one bucketing window: the day-by-day series plus the categorical
// breakdowns.
type DashboardReport struct {
	Window    Period
	StartKey  string // first day key included in the series
	Series    []SeriesPoint
	Species   []TallyEntry // full species breakdown, quantity caught
	Top       []TallyEntry // top buyers by earnings
	TotalQty  Quantity
	TotalEarn Money
}

// NewDashboardReport aggregates records into a dashboard view. The daily
// window starts at today's date key, the weekly window at the most recent
// Monday's; the categorical breakdowns always cover the whole collection,
// matching the dashboard charts.
func NewDashboardReport(records []CatchRecord, window Period) *DashboardReport {
	startKey := TodayKey()
	if window == Weekly {
		startKey = WeekStartKey()
	}

	report := &DashboardReport{
		Window:   window,
		StartKey: startKey,
		Series:   DaySeries(Bucket(records, startKey)),
		Species:  TopN(Tally(records, BySpecies), -1),
		Top:      TopN(Tally(records, ByBuyer), TopBuyers),
	}
	for _, point := range report.Series {
		report.TotalQty = report.TotalQty.Add(point.Qty)
		report.TotalEarn = report.TotalEarn.Add(point.Earn)
	}
	return report
}

// SummaryReport holds today's and the running week's totals.
type SummaryReport struct {
	Date      Date
	TodayQty  Quantity
	TodayEarn Money
	WeekQty   Quantity
	WeekEarn  Money
}

// NewSummaryReport computes the summary locally from a record collection.
// The server exposes the same figures on /summary (see Client.Summary);
// both derive from the same listing so they agree whenever the local mirror
// is fresh.
func NewSummaryReport(records []CatchRecord) *SummaryReport {
	s := &SummaryReport{Date: Today()}
	today := TodayKey()
	for _, point := range DaySeries(Bucket(records, WeekStartKey())) {
		s.WeekQty = s.WeekQty.Add(point.Qty)
		s.WeekEarn = s.WeekEarn.Add(point.Earn)
		if point.Day == today {
			s.TodayQty = s.TodayQty.Add(point.Qty)
			s.TodayEarn = s.TodayEarn.Add(point.Earn)
		}
	}
	return s
}

// HistoryReport is the record table shown by the history surface, most
// recent first, matching the server listing order.
type HistoryReport struct {
	Records []CatchRecord
}

func NewHistoryReport(records []CatchRecord) *HistoryReport {
	return &HistoryReport{Records: records}
}
