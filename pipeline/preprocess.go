package pipeline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/Abaneee/social-pulse/dataset"
)

// Options are the cleaning toggles. Field names follow the client
// payload casing.
type Options struct {
	RemoveNulls      bool `json:"removeNulls"`
	Deduplicate      bool `json:"deduplicate"`
	StandardizeDates bool `json:"standardizeDates"`
}

// DataHealth summarizes cell completeness of a table. Percentage is
// the share of non-missing cells, one decimal place.
type DataHealth struct {
	Percentage   float64 `json:"percentage"`
	TotalRows    int     `json:"totalRows"`
	TotalColumns int     `json:"totalColumns"`
	NullCount    int     `json:"nullCount"`
}

// Result is the outcome of a preprocessing run. Health describes the
// cleaned table, not the raw input.
type Result struct {
	Table       *dataset.Table   `json:"-"`
	Steps       []string         `json:"cleaning_steps"`
	RowsRemoved int              `json:"rows_removed"`
	RowsAfter   int              `json:"rows_after"`
	Columns     []string         `json:"columns"`
	Preview     []map[string]any `json:"preview"`
	Health      DataHealth       `json:"data_health"`
}

// Preprocess cleans a post table through the fixed step order. The
// input table is not modified. Applied steps are recorded by name in
// Result.Steps.
func Preprocess(src *dataset.Table, opts Options) *Result {
	t := src.Clone()
	originalRows := t.Len()
	steps := []string{}

	t.TrimColumnNames()

	if dateCol, ok := t.Resolve(dataset.FieldDate); ok {
		parseDates(t, dateCol)
		steps = append(steps, "parse_dates")
		if opts.StandardizeDates {
			standardizeDates(t, dateCol)
			steps = append(steps, "standardize_dates")
		}
	}

	if timeCol, ok := t.Resolve(dataset.FieldTime); ok {
		extractHour(t, timeCol)
		steps = append(steps, "extract_hour")
	} else if hourCol, ok := t.Resolve(dataset.FieldHour); ok {
		numericColumn(t, hourCol, dataset.ColHour)
		steps = append(steps, "extract_hour")
	}

	if platCol, ok := t.Resolve(dataset.FieldPlatform); ok {
		standardizePlatforms(t, platCol)
		steps = append(steps, "standardize_platforms")
	}

	if opts.RemoveNulls {
		var dropped bool
		t, dropped = dropNullTargets(t)
		if dropped {
			steps = append(steps, "drop_null_targets")
		}
		fillMedians(t)
		steps = append(steps, "fill_median")
	}

	if opts.Deduplicate {
		before := t.Len()
		t = deduplicate(t)
		if t.Len() < before {
			steps = append(steps, "deduplicate")
		}
	}

	coerceCounters(t)

	if _, ok := t.Resolve(dataset.FieldEngagementRate); !ok {
		if reachCol, ok := t.Resolve(dataset.FieldReach); ok {
			deriveEngagementRate(t, reachCol)
			steps = append(steps, "calculate_engagement")
		}
	}

	return &Result{
		Table:       t,
		Steps:       steps,
		RowsRemoved: originalRows - t.Len(),
		RowsAfter:   t.Len(),
		Columns:     t.Columns(),
		Preview:     Preview(t, 10),
		Health:      Health(t),
	}
}

// dateLayouts is tried in order; day-first forms come before ISO so
// ambiguous dates like 05/03/2024 resolve to March 5th.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	// month-first as a last resort for dates invalid day-first,
	// e.g. 03/25/2024
	"1/2/2006",
}

// ParseDate parses a date string tolerantly, day-first. The zero time
// and false are returned when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseDates(t *dataset.Table, dateCol string) {
	t.AddColumn(dataset.ColDayOfWeek)
	t.AddColumn(dataset.ColMonth)
	for _, r := range t.Rows() {
		var ts time.Time
		var ok bool
		switch v := r[dateCol].(type) {
		case time.Time:
			ts, ok = v, true
		case string:
			ts, ok = ParseDate(v)
		}
		if !ok {
			r[dateCol] = nil
			r[dataset.ColDayOfWeek] = nil
			r[dataset.ColMonth] = nil
			continue
		}
		r[dateCol] = ts
		// Weekday with Monday as 0
		r[dataset.ColDayOfWeek] = float64((int(ts.Weekday()) + 6) % 7)
		r[dataset.ColMonth] = float64(int(ts.Month()))
	}
}

func standardizeDates(t *dataset.Table, dateCol string) {
	for _, r := range t.Rows() {
		if ts, ok := r[dateCol].(time.Time); ok {
			r[dateCol] = ts.Format("2006-01-02")
		}
	}
}

// extractHour derives the Hour column from HH:MM strings. When not a
// single value parses, the column is reinterpreted numerically.
func extractHour(t *dataset.Table, timeCol string) {
	t.AddColumn(dataset.ColHour)
	parsedAny := false
	for _, r := range t.Rows() {
		if s, ok := r[timeCol].(string); ok {
			if ts, err := time.Parse("15:04", strings.TrimSpace(s)); err == nil {
				r[dataset.ColHour] = float64(ts.Hour())
				parsedAny = true
				continue
			}
		}
		r[dataset.ColHour] = nil
	}
	if !parsedAny {
		numericColumn(t, timeCol, dataset.ColHour)
	}
}

// numericColumn copies src coerced to numbers into dst; unparsable
// cells become nil.
func numericColumn(t *dataset.Table, src, dst string) {
	t.AddColumn(dst)
	for _, r := range t.Rows() {
		if f, ok := dataset.Float(r[src]); ok {
			r[dst] = f
		} else {
			r[dst] = nil
		}
	}
}

func standardizePlatforms(t *dataset.Table, platCol string) {
	for _, r := range t.Rows() {
		if s, ok := r[platCol].(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "twitter", "x":
				r[platCol] = "X"
			}
		}
	}
}

func dropNullTargets(t *dataset.Table) (*dataset.Table, bool) {
	var critical []string
	if c, ok := t.Resolve(dataset.FieldEngagementRate); ok {
		critical = append(critical, c)
	}
	if c, ok := t.Resolve(dataset.FieldPlatform); ok {
		critical = append(critical, c)
	}
	if len(critical) == 0 {
		return t, false
	}
	return t.Filter(func(r dataset.Row) bool {
		for _, c := range critical {
			if r[c] == nil {
				return false
			}
		}
		return true
	}), true
}

// fillMedians replaces missing cells of numeric columns with the
// column median. A column counts as numeric when every present cell is
// a number.
func fillMedians(t *dataset.Table) {
	for _, col := range t.Columns() {
		var present []float64
		numeric := true
		hasNil := false
		for _, r := range t.Rows() {
			switch v := r[col].(type) {
			case float64:
				present = append(present, v)
			case nil:
				hasNil = true
			default:
				numeric = false
			}
			if !numeric {
				break
			}
		}
		if !numeric || !hasNil || len(present) == 0 {
			continue
		}
		med, err := stats.Median(present)
		if err != nil {
			continue
		}
		for _, r := range t.Rows() {
			if r[col] == nil {
				r[col] = med
			}
		}
	}
}

func deduplicate(t *dataset.Table) *dataset.Table {
	seen := make(map[string]bool, t.Len())
	return t.Filter(func(r dataset.Row) bool {
		key := rowKey(t.Columns(), r)
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}

func rowKey(cols []string, r dataset.Row) string {
	var b strings.Builder
	for _, c := range cols {
		fmt.Fprintf(&b, "%T=%v\x1f", r[c], r[c])
	}
	return b.String()
}

func coerceCounters(t *dataset.Table) {
	fields := []dataset.Field{
		dataset.FieldLikes, dataset.FieldComments, dataset.FieldShares,
		dataset.FieldSaves, dataset.FieldReach, dataset.FieldEngagementRate,
		dataset.FieldCaptionLength, dataset.FieldHashtagCount,
	}
	for _, f := range fields {
		col, ok := t.Resolve(f)
		if !ok {
			continue
		}
		for _, r := range t.Rows() {
			if v, ok := dataset.Float(r[col]); ok {
				r[col] = v
			} else {
				r[col] = 0.0
			}
		}
	}
}

func deriveEngagementRate(t *dataset.Table, reachCol string) {
	var interactionCols []string
	for _, f := range []dataset.Field{dataset.FieldLikes, dataset.FieldComments, dataset.FieldShares, dataset.FieldSaves} {
		if c, ok := t.Resolve(f); ok {
			interactionCols = append(interactionCols, c)
		}
	}
	t.AddColumn(dataset.ColEngagementRate)
	for _, r := range t.Rows() {
		var interactions float64
		for _, c := range interactionCols {
			if v, ok := dataset.Float(r[c]); ok {
				interactions += v
			}
		}
		reach, _ := dataset.Float(r[reachCol])
		var rate float64
		if reach != 0 {
			rate = interactions / reach * 100
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			rate = 0
		}
		r[dataset.ColEngagementRate] = rate
	}
}

// Preview renders the first n rows for display. Dates are formatted
// YYYY-MM-DD and missing cells render as empty strings.
func Preview(t *dataset.Table, n int) []map[string]any {
	if n > t.Len() {
		n = t.Len()
	}
	cols := t.Columns()
	out := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		r := t.Row(i)
		m := make(map[string]any, len(cols))
		for _, c := range cols {
			switch v := r[c].(type) {
			case nil:
				m[c] = ""
			case time.Time:
				m[c] = v.Format("2006-01-02")
			default:
				m[c] = v
			}
		}
		out = append(out, m)
	}
	return out
}

// Health computes cell completeness for a table.
func Health(t *dataset.Table) DataHealth {
	rows, cols := t.Len(), len(t.Columns())
	totalCells := rows * cols
	nulls := 0
	for _, r := range t.Rows() {
		for _, c := range t.Columns() {
			if r[c] == nil {
				nulls++
			}
		}
	}
	pct := 0.0
	if totalCells > 0 {
		pct = dataset.Round(float64(totalCells-nulls)/float64(totalCells)*100, 1)
	}
	return DataHealth{
		Percentage:   pct,
		TotalRows:    rows,
		TotalColumns: cols,
		NullCount:    nulls,
	}
}
