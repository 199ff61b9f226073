package ledger

import (
	"testing"
	"time"
)

func TestMonthOfAndString(t *testing.T) {
	m := MonthOf(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))
	if m != (Month{Year: 2024, Month: time.January}) {
		t.Fatalf("MonthOf = %+v", m)
	}
	if m.String() != "2024-01" {
		t.Fatalf("String = %q, want 2024-01", m.String())
	}
}

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1}, {time.March, 1},
		{time.April, 2}, {time.June, 2},
		{time.July, 3}, {time.September, 3},
		{time.October, 4}, {time.December, 4},
	}
	for _, c := range cases {
		q := QuarterOf(time.Date(2024, c.month, 15, 0, 0, 0, 0, time.UTC))
		if q.Quarter != c.want {
			t.Errorf("QuarterOf(%v) = Q%d, want Q%d", c.month, q.Quarter, c.want)
		}
	}
	if got := (Quarter{Year: 2024, Quarter: 1}).String(); got != "2024-Q1" {
		t.Fatalf("String = %q, want 2024-Q1", got)
	}
}

func TestPeriodOrdering(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	jan := Month{Year: 2024, Month: time.January}
	if !dec.Before(jan) || jan.Before(dec) {
		t.Error("month ordering across year boundary is wrong")
	}
	q4 := Quarter{Year: 2023, Quarter: 4}
	q1 := Quarter{Year: 2024, Quarter: 1}
	if !q4.Before(q1) || q1.Before(q4) {
		t.Error("quarter ordering across year boundary is wrong")
	}
}

func TestParseQuarter(t *testing.T) {
	cases := []struct {
		in   string
		want Quarter
		ok   bool
	}{
		{"2024-Q1", Quarter{2024, 1}, true},
		{"2024q3", Quarter{2024, 3}, true},
		{"2024Q4", Quarter{2024, 4}, true},
		{"Q2 2024", Quarter{2024, 2}, true},
		{" 2024-Q2 ", Quarter{2024, 2}, true},
		{"2024-Q5", Quarter{}, false},
		{"banana", Quarter{}, false},
		{"", Quarter{}, false},
	}
	for _, c := range cases {
		got, ok := ParseQuarter(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseQuarter(%q) = %+v, %v; want %+v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestQuarterKeyPrefersExplicitQuarter(t *testing.T) {
	txn := Transaction{
		Date:    time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Quarter: Quarter{Year: 2024, Quarter: 3},
	}
	if got := txn.QuarterKey(); got != (Quarter{2024, 3}) {
		t.Fatalf("QuarterKey = %v, want explicit 2024-Q3", got)
	}
	txn.Quarter = Quarter{}
	if got := txn.QuarterKey(); got != (Quarter{2024, 1}) {
		t.Fatalf("QuarterKey = %v, want derived 2024-Q1", got)
	}
}
