package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Transaction is one retained ledger row. Quarter is only set when the
// source file carried an explicit Quarter column; otherwise it is derived
// from Date on demand.
type Transaction struct {
	ID      string
	Date    time.Time
	Amount  float64
	Quarter Quarter
}

// MonthKey returns the month bucket for the transaction.
func (t Transaction) MonthKey() Month {
	return MonthOf(t.Date)
}

// QuarterKey returns the explicit quarter when present, else derives it.
func (t Transaction) QuarterKey() Quarter {
	if t.Quarter != (Quarter{}) {
		return t.Quarter
	}
	return QuarterOf(t.Date)
}

// Month is a year+month period key.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf buckets a date into its Month key.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Before reports chronological ordering between month keys.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Quarter is a year+quarter-of-year period key.
type Quarter struct {
	Year    int
	Quarter int
}

// QuarterOf buckets a date into its Quarter key.
func QuarterOf(t time.Time) Quarter {
	return Quarter{Year: t.Year(), Quarter: (int(t.Month())-1)/3 + 1}
}

func (q Quarter) String() string {
	return fmt.Sprintf("%04d-Q%d", q.Year, q.Quarter)
}

// Before reports chronological ordering between quarter keys.
func (q Quarter) Before(o Quarter) bool {
	if q.Year != o.Year {
		return q.Year < o.Year
	}
	return q.Quarter < o.Quarter
}

// ParseQuarter accepts "2024-Q1", "2024Q1" and "Q1 2024".
func ParseQuarter(s string) (Quarter, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Quarter{}, false
	}
	var q Quarter
	for _, layout := range []string{"%d-Q%d", "%dQ%d"} {
		if n, err := fmt.Sscanf(s, layout, &q.Year, &q.Quarter); err == nil && n == 2 {
			if q.valid() {
				return q, true
			}
		}
	}
	if n, err := fmt.Sscanf(s, "Q%d %d", &q.Quarter, &q.Year); err == nil && n == 2 && q.valid() {
		return q, true
	}
	return Quarter{}, false
}

func (q Quarter) valid() bool {
	return q.Year > 0 && q.Quarter >= 1 && q.Quarter <= 4
}
