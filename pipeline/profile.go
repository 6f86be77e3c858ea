package pipeline

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/Abaneee/social-pulse/dataset"
)

// Profile is the exploratory report served by the EDA view.
type Profile struct {
	Table     TableSummary               `json:"table"`
	Variables map[string]VariableSummary `json:"variables"`
}

// TableSummary holds dataset-level counts.
type TableSummary struct {
	N             int     `json:"n"`
	NVar          int     `json:"n_var"`
	NCellsMissing int     `json:"n_cells_missing"`
	NDuplicates   int     `json:"n_duplicates"`
	PCellsMissing float64 `json:"p_cells_missing"`
}

// VariableSummary describes one column. Numeric columns carry the
// describe block, categorical ones the top-5 value counts.
type VariableSummary struct {
	Type      string         `json:"type"`
	NMissing  int            `json:"n_missing"`
	PMissing  float64        `json:"p_missing"`
	NDistinct int            `json:"n_distinct"`
	Count     int            `json:"count"`
	Mean      *float64       `json:"mean,omitempty"`
	Std       *float64       `json:"std,omitempty"`
	Min       *float64       `json:"min,omitempty"`
	Max       *float64       `json:"max,omitempty"`
	Median    *float64       `json:"median,omitempty"`
	TopValues map[string]int `json:"top_values,omitempty"`
}

// Column type labels used in variable summaries.
const (
	TypeNumeric     = "Numeric"
	TypeCategorical = "Categorical"
	TypeDatetime    = "Datetime"
)

// GenerateProfile computes the EDA report for a table.
func GenerateProfile(t *dataset.Table) *Profile {
	rows := t.Len()
	cols := t.Columns()
	totalCells := rows * len(cols)

	missing := 0
	seen := make(map[string]bool, rows)
	dups := 0
	for _, r := range t.Rows() {
		for _, c := range cols {
			if r[c] == nil {
				missing++
			}
		}
		key := rowKey(cols, r)
		if seen[key] {
			dups++
		}
		seen[key] = true
	}

	pMissing := 0.0
	if totalCells > 0 {
		pMissing = dataset.Round(float64(missing)/float64(totalCells)*100, 2)
	}

	p := &Profile{
		Table: TableSummary{
			N:             rows,
			NVar:          len(cols),
			NCellsMissing: missing,
			NDuplicates:   dups,
			PCellsMissing: pMissing,
		},
		Variables: make(map[string]VariableSummary, len(cols)),
	}

	for _, c := range cols {
		p.Variables[c] = summarizeColumn(t, c)
	}
	return p
}

func summarizeColumn(t *dataset.Table, col string) VariableSummary {
	rows := t.Len()
	nMissing := 0
	var numbers []float64
	numeric := true
	datetime := true
	distinct := make(map[string]bool)

	for _, r := range t.Rows() {
		v := r[col]
		if v == nil {
			nMissing++
			continue
		}
		switch tv := v.(type) {
		case float64:
			numbers = append(numbers, tv)
			datetime = false
		case time.Time:
			numeric = false
		default:
			numeric = false
			datetime = false
		}
		distinct[dataset.Text(v)] = true
	}

	count := rows - nMissing
	pMissing := 0.0
	if rows > 0 {
		pMissing = dataset.Round(float64(nMissing)/float64(rows)*100, 2)
	}
	s := VariableSummary{
		NMissing:  nMissing,
		PMissing:  pMissing,
		NDistinct: len(distinct),
		Count:     count,
	}

	switch {
	case count > 0 && numeric:
		s.Type = TypeNumeric
		s.Mean = describeStat(stats.Mean, numbers)
		s.Std = describeStat(stats.StandardDeviationSample, numbers)
		s.Min = describeStat(stats.Min, numbers)
		s.Max = describeStat(stats.Max, numbers)
		s.Median = describeStat(stats.Median, numbers)
	case count > 0 && datetime:
		s.Type = TypeDatetime
		s.TopValues = topValues(t, col)
	default:
		s.Type = TypeCategorical
		s.TopValues = topValues(t, col)
	}
	return s
}

func describeStat(fn func(stats.Float64Data) (float64, error), numbers []float64) *float64 {
	v, err := fn(numbers)
	if err != nil {
		v = 0
	}
	r := dataset.Round(v, 4)
	return &r
}

func topValues(t *dataset.Table, col string) map[string]int {
	counts := make(map[string]int)
	for _, r := range t.Rows() {
		if r[col] == nil {
			continue
		}
		counts[dataset.Text(r[col])]++
	}
	type vc struct {
		value string
		n     int
	}
	ranked := make([]vc, 0, len(counts))
	for v, n := range counts {
		ranked = append(ranked, vc{v, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].value < ranked[j].value
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	top := make(map[string]int, len(ranked))
	for _, e := range ranked {
		top[e.value] = e.n
	}
	return top
}
