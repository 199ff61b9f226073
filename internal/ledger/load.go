package ledger

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Formats controls how ledger rows are parsed.
type Formats struct {
	DateLayouts []string // tried in declaration order
	AmountStrip string   // characters removed before parsing amounts
}

// DefaultFormats returns the built-in parsing rules.
func DefaultFormats() Formats {
	return Formats{
		DateLayouts: []string{"2006-01-02", "01/02/2006", "2/01/2006", "Jan 2, 2006"},
		AmountStrip: ",$",
	}
}

// Result is a cleaned ledger. Dropped counts rows discarded for an
// unparseable date or missing amount; dropping is silent per row.
type Result struct {
	Transactions []Transaction
	Dropped      int
}

// SchemaError reports required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ledger must include %s column(s)", strings.Join(e.Missing, " and "))
}

// Load reads and validates a ledger CSV from disk.
func Load(path string, f Formats) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open ledger: %w", err)
	}
	defer file.Close()
	return Read(file, f)
}

// Read parses a ledger CSV. The first record is the header; Date and
// Amount are required, a Quarter column is honored when present, and any
// other columns pass through unused.
func Read(r io.Reader, f Formats) (Result, error) {
	if len(f.DateLayouts) == 0 {
		f = DefaultFormats()
	}

	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if err == io.EOF {
		return Result{}, &SchemaError{Missing: []string{"'Date'", "'Amount'"}}
	}
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	dateCol := findColumn(header, "Date")
	amountCol := findColumn(header, "Amount")
	quarterCol := findColumn(header, "Quarter")

	var missing []string
	if dateCol < 0 {
		missing = append(missing, "'Date'")
	}
	if amountCol < 0 {
		missing = append(missing, "'Amount'")
	}
	if len(missing) > 0 {
		return Result{}, &SchemaError{Missing: missing}
	}

	res := Result{}
	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read ledger row: %w", err)
		}
		if cell(rec, dateCol) == "" && cell(rec, amountCol) == "" {
			continue // blank line
		}
		date, ok := parseDate(cell(rec, dateCol), f.DateLayouts)
		if !ok {
			res.Dropped++
			continue
		}
		amount, ok := parseAmount(cell(rec, amountCol), f.AmountStrip)
		if !ok {
			res.Dropped++
			continue
		}
		t := Transaction{ID: uuid.NewString(), Date: date, Amount: amount}
		if quarterCol >= 0 {
			if q, ok := ParseQuarter(cell(rec, quarterCol)); ok {
				t.Quarter = q
			}
		}
		res.Transactions = append(res.Transactions, t)
	}
	return res, nil
}

// findColumn locates a header column by name: exact case-insensitive
// first, then within levenshtein distance 1 to tolerate stray characters.
func findColumn(header []string, name string) int {
	want := strings.ToLower(name)
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	for i, h := range header {
		if levenshtein.ComputeDistance(strings.ToLower(strings.TrimSpace(h)), want) <= 1 {
			return i
		}
	}
	return -1
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s, strip string) (float64, bool) {
	for _, c := range strip {
		s = strings.ReplaceAll(s, string(c), "")
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
