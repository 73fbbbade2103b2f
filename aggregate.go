package aqualedger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// This file holds the pure aggregation functions of the engine. They are
// side-effect-free and defined for arbitrary record collections: no
// sortedness is assumed, and an empty collection yields empty results.

// BucketTotals accumulates one calendar day's quantity and earnings.
type BucketTotals struct {
	Qty  Quantity
	Earn Money
}

// Bucket groups records by calendar day. A record is included iff its day
// key is lexicographically >= startKey, which preserves date order for
// YYYY-MM-DD keys. An empty startKey includes everything.
func Bucket(records []CatchRecord, startKey string) map[string]BucketTotals {
	out := make(map[string]BucketTotals)
	for _, r := range records {
		key := r.DayKey()
		if key < startKey {
			continue
		}
		t := out[key]
		t.Qty = t.Qty.Add(r.Quantity)
		t.Earn = t.Earn.Add(r.Price)
		out[key] = t
	}
	return out
}

// SeriesPoint is one day of a chart series.
type SeriesPoint struct {
	Day string
	BucketTotals
}

// DaySeries flattens buckets into a series sorted by day key ascending.
func DaySeries(buckets map[string]BucketTotals) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(buckets))
	for day, totals := range buckets {
		out = append(out, SeriesPoint{Day: day, BucketTotals: totals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// TodayKey returns the day key of the current date, the start of the daily
// bucketing window.
func TodayKey() string { return Today().String() }

// WeekStartKey returns the day key of the most recent Monday, the start of
// the weekly bucketing window.
func WeekStartKey() string { return Today().StartOf(Weekly).String() }

// TallyField selects the categorical axis of a tally. The selector is an
// explicit enumeration so each axis keeps its own meaning: the species
// breakdown answers "how much was caught", the buyer breakdown answers
// "how much was earned".
type TallyField int

const (
	BySpecies TallyField = iota // sums quantity per species value
	ByBuyer                     // sums price per buyer value
)

func (t TallyField) String() string {
	switch t {
	case BySpecies:
		return "species"
	case ByBuyer:
		return "buyer"
	default:
		return "unknown"
	}
}

// accessor returns the tallied key and amount of a record for this axis.
func (t TallyField) accessor(r CatchRecord) (key string, amount decimal.Decimal) {
	switch t {
	case BySpecies:
		return r.Species, r.Quantity.Decimal()
	case ByBuyer:
		return r.Buyer, r.Price.Decimal()
	default:
		panic("unknown tally field")
	}
}

// Tally sums an amount per categorical field value across the collection.
func Tally(records []CatchRecord, field TallyField) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range records {
		key, amount := field.accessor(r)
		out[key] = out[key].Add(amount)
	}
	return out
}

// TallyEntry is one row of a ranking derived from a tally.
type TallyEntry struct {
	Name  string
	Total decimal.Decimal
}

// TopN ranks tally entries by total descending, truncated to the first n.
// Equal totals are ordered by name ascending so the ranking is
// deterministic.
func TopN(tally map[string]decimal.Decimal, n int) []TallyEntry {
	out := make([]TallyEntry, 0, len(tally))
	for name, total := range tally {
		out = append(out, TallyEntry{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
