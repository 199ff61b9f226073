package report

import (
	"sort"

	"github.com/alanw/fintrack/internal/ledger"
)

// MonthTotal is one month's spending total. Slices of MonthTotal are
// always ordered ascending by period.
type MonthTotal struct {
	Month ledger.Month
	Total float64
}

// QuarterTotal is one quarter's spending total, ordered ascending.
type QuarterTotal struct {
	Quarter ledger.Quarter
	Total   float64
}

// MonthlyTotals groups transactions by month key and sums amounts.
func MonthlyTotals(txns []ledger.Transaction) []MonthTotal {
	byMonth := make(map[ledger.Month]float64)
	for _, t := range txns {
		byMonth[t.MonthKey()] += t.Amount
	}
	out := make([]MonthTotal, 0, len(byMonth))
	for m, total := range byMonth {
		out = append(out, MonthTotal{Month: m, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// QuarterlyTotals groups transactions by quarter key and sums amounts. An
// explicit quarter on the transaction wins over derivation from its date.
func QuarterlyTotals(txns []ledger.Transaction) []QuarterTotal {
	byQuarter := make(map[ledger.Quarter]float64)
	for _, t := range txns {
		byQuarter[t.QuarterKey()] += t.Amount
	}
	out := make([]QuarterTotal, 0, len(byQuarter))
	for q, total := range byQuarter {
		out = append(out, QuarterTotal{Quarter: q, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quarter.Before(out[j].Quarter) })
	return out
}

// Cumulative returns the running sum of monthly totals in period order.
func Cumulative(monthly []MonthTotal) []MonthTotal {
	out := make([]MonthTotal, 0, len(monthly))
	running := 0.0
	for _, mt := range monthly {
		running += mt.Total
		out = append(out, MonthTotal{Month: mt.Month, Total: running})
	}
	return out
}

// Average is the arithmetic mean of the monthly totals, 0 when empty.
func Average(monthly []MonthTotal) float64 {
	if len(monthly) == 0 {
		return 0
	}
	sum := 0.0
	for _, mt := range monthly {
		sum += mt.Total
	}
	return sum / float64(len(monthly))
}

// SuggestedBudget is 90% of the average monthly spend.
func SuggestedBudget(monthly []MonthTotal) float64 {
	return Average(monthly) * 0.9
}

// HighestMonth returns the period with the maximum total. Ties keep the
// first maximum in chronological order. ok is false when there are no
// periods.
func HighestMonth(monthly []MonthTotal) (MonthTotal, bool) {
	if len(monthly) == 0 {
		return MonthTotal{}, false
	}
	best := monthly[0]
	for _, mt := range monthly[1:] {
		if mt.Total > best.Total {
			best = mt
		}
	}
	return best, true
}

// Alerts returns the periods whose total strictly exceeds limit, in
// chronological order. A total exactly equal to the limit never alerts.
func Alerts(monthly []MonthTotal, limit float64) []MonthTotal {
	var out []MonthTotal
	for _, mt := range monthly {
		if mt.Total > limit {
			out = append(out, mt)
		}
	}
	return out
}

// Buckets counts transactions by size. The three buckets are disjoint and
// exhaustive: Small < 100, 100 <= Medium < 500, Large >= 500.
type Buckets struct {
	Small  int
	Medium int
	Large  int
}

// SizeBuckets classifies every transaction by raw amount.
func SizeBuckets(txns []ledger.Transaction) Buckets {
	var b Buckets
	for _, t := range txns {
		switch {
		case t.Amount < 100:
			b.Small++
		case t.Amount < 500:
			b.Medium++
		default:
			b.Large++
		}
	}
	return b
}
