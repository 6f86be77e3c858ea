package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/pipeline"
)

const (
	maxScatterPosts     = 200
	dashboardSampleSeed = 42
)

var fullDayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// PieSlice is one content type's share of mean engagement.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DayEngagement is the mean engagement of one weekday.
type DayEngagement struct {
	Day        string  `json:"day"`
	Engagement float64 `json:"engagement"`
}

// MonthEngagement is the mean engagement of one calendar month.
type MonthEngagement struct {
	Month      string  `json:"month"`
	Engagement float64 `json:"engagement"`
}

// HashtagReach is the summed reach of one hashtag.
type HashtagReach struct {
	Hashtag string `json:"hashtag"`
	Reach   int    `json:"reach"`
}

// ScatterPost plots one post's reach against its engagement.
type ScatterPost struct {
	X    int     `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// NamedEngagement labels one post for the top-posts bar chart.
type NamedEngagement struct {
	Name       string  `json:"name"`
	Engagement float64 `json:"engagement"`
}

// DateReach is the summed reach of one posting date.
type DateReach struct {
	Date  string `json:"date"`
	Reach int    `json:"reach"`
}

// HourEngagement is the mean engagement of one hour of day.
type HourEngagement struct {
	Hour       string  `json:"hour"`
	Engagement float64 `json:"engagement"`
}

// KPIs are the dashboard headline numbers.
type KPIs struct {
	TotalReach    int     `json:"totalReach"`
	AvgEngagement float64 `json:"avgEngagement"`
	TopHashtag    string  `json:"topHashtag"`
	PeakTime      string  `json:"peakTime"`
}

// Dashboard is the chart-ready payload for one platform selection.
// PieData keys are "All" plus each platform present after filtering.
// Platforms always lists every platform of the unfiltered table so the
// selector stays populated while a filter is active.
type Dashboard struct {
	PieData        map[string][]PieSlice `json:"pieData"`
	BarDayData     []DayEngagement       `json:"barDayData"`
	LineMonthData  []MonthEngagement     `json:"lineMonthData"`
	BarHashtagData []HashtagReach        `json:"barHashtagData"`
	ScatterData    []ScatterPost         `json:"scatterData"`
	TopPostsData   []NamedEngagement     `json:"topPostsData"`
	AreaReachData  []DateReach           `json:"areaReachData"`
	BarHourData    []HourEngagement      `json:"barHourData"`
	KPIs           KPIs                  `json:"kpis"`
	Platforms      []string              `json:"platforms"`
}

// BuildDashboard aggregates the table into the dashboard payload,
// optionally narrowed to one platform. "", "All" and "None" select
// everything.
func BuildDashboard(t *dataset.Table, platform string) *Dashboard {
	platCol, hasPlat := t.Resolve(dataset.FieldPlatform)

	d := &Dashboard{
		PieData:        map[string][]PieSlice{},
		BarDayData:     []DayEngagement{},
		LineMonthData:  []MonthEngagement{},
		BarHashtagData: []HashtagReach{},
		ScatterData:    []ScatterPost{},
		TopPostsData:   []NamedEngagement{},
		AreaReachData:  []DateReach{},
		BarHourData:    []HourEngagement{},
		KPIs:           KPIs{TopHashtag: "N/A", PeakTime: "N/A"},
		Platforms:      []string{},
	}
	if hasPlat {
		d.Platforms = distinctSorted(t, platCol)
	}

	cur := t
	if platformFilterActive(platform) && hasPlat {
		cur = t.Filter(func(r dataset.Row) bool {
			return dataset.Text(r[platCol]) == platform
		})
	}

	engCol, hasEng := cur.Resolve(dataset.FieldEngagementRate)
	reachCol, hasReach := cur.Resolve(dataset.FieldReach)
	ctCol, hasCT := cur.Resolve(dataset.FieldContentType)
	dateCol, hasDate := cur.Resolve(dataset.FieldDate)
	tagCol, hasTags := cur.Resolve(dataset.FieldHashtags)
	hourCol, hasHour := cur.Resolve(dataset.FieldHour)

	if hasCT && hasEng {
		d.PieData = pieData(cur, ctCol, engCol, platCol, hasPlat)
	}
	if hasDate && hasEng {
		d.BarDayData = barDayData(cur, dateCol, engCol)
		d.LineMonthData = lineMonthData(cur, dateCol, engCol)
	}
	if hasTags && hasReach {
		d.BarHashtagData = barHashtagData(cur, tagCol, reachCol)
	}
	if hasEng && hasReach {
		d.ScatterData = scatterData(cur, engCol, reachCol, ctCol)
	}
	if hasEng {
		d.TopPostsData = topPostsData(cur, engCol, platCol, ctCol)
	}
	if hasDate && hasReach {
		d.AreaReachData = areaReachData(cur, dateCol, reachCol)
	}
	if hasHour && hasEng {
		d.BarHourData = barHourData(cur, hourCol, engCol)
	}

	if hasReach {
		var total float64
		for _, r := range cur.Rows() {
			total += cellNum(r, reachCol)
		}
		d.KPIs.TotalReach = int(total)
	}
	if hasEng && cur.Len() > 0 {
		var total float64
		for _, r := range cur.Rows() {
			total += cellNum(r, engCol)
		}
		d.KPIs.AvgEngagement = dataset.Round(total/float64(cur.Len()), 2)
	}
	if len(d.BarHashtagData) > 0 {
		d.KPIs.TopHashtag = d.BarHashtagData[0].Hashtag
	}
	if len(d.BarHourData) > 0 {
		d.KPIs.PeakTime = peakTime(cur, hourCol, engCol)
	}
	return d
}

func platformFilterActive(p string) bool {
	return p != "" && p != "All" && p != "None"
}

// cellNum coerces a cell to float64 with 0 standing in for anything
// non-numeric, mirroring how chart aggregation treats dirty values.
func cellNum(r dataset.Row, col string) float64 {
	f, ok := dataset.Float(r[col])
	if !ok {
		return 0
	}
	return f
}

func cellDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, true
	case string:
		return pipeline.ParseDate(x)
	default:
		return pipeline.ParseDate(dataset.Text(v))
	}
}

func distinctSorted(t *dataset.Table, col string) []string {
	seen := make(map[string]bool)
	for _, r := range t.Rows() {
		if s := dataset.Text(r[col]); s != "" {
			seen[s] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func pieData(t *dataset.Table, ctCol, engCol, platCol string, hasPlat bool) map[string][]PieSlice {
	out := map[string][]PieSlice{"All": pieSlices(t, ctCol, engCol)}
	if !hasPlat {
		return out
	}
	for _, p := range distinctSorted(t, platCol) {
		p := p
		sub := t.Filter(func(r dataset.Row) bool {
			return dataset.Text(r[platCol]) == p
		})
		out[p] = pieSlices(sub, ctCol, engCol)
	}
	return out
}

func pieSlices(t *dataset.Table, ctCol, engCol string) []PieSlice {
	groups := make(map[string]*meanAgg)
	for _, r := range t.Rows() {
		name := dataset.Text(r[ctCol])
		if name == "" {
			continue
		}
		g := groups[name]
		if g == nil {
			g = &meanAgg{}
			groups[name] = g
		}
		g.add(cellNum(r, engCol))
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	slices := make([]PieSlice, 0, len(names))
	for _, name := range names {
		slices = append(slices, PieSlice{Name: name, Value: dataset.Round(groups[name].mean(), 2)})
	}
	return slices
}

// barDayData averages engagement per weekday derived from the date
// column, Monday through Sunday, skipping days with no posts.
func barDayData(t *dataset.Table, dateCol, engCol string) []DayEngagement {
	var groups [7]meanAgg
	for _, r := range t.Rows() {
		d, ok := cellDate(r[dateCol])
		if !ok {
			continue
		}
		groups[(int(d.Weekday())+6)%7].add(cellNum(r, engCol))
	}

	out := make([]DayEngagement, 0, 7)
	for i, g := range groups {
		if g.n == 0 {
			continue
		}
		out = append(out, DayEngagement{Day: fullDayNames[i], Engagement: dataset.Round(g.mean(), 2)})
	}
	return out
}

func lineMonthData(t *dataset.Table, dateCol, engCol string) []MonthEngagement {
	var groups [13]meanAgg
	for _, r := range t.Rows() {
		d, ok := cellDate(r[dateCol])
		if !ok {
			continue
		}
		groups[int(d.Month())].add(cellNum(r, engCol))
	}

	out := make([]MonthEngagement, 0, 12)
	for m := 1; m <= 12; m++ {
		if groups[m].n == 0 {
			continue
		}
		out = append(out, MonthEngagement{
			Month:      time.Month(m).String()[:3],
			Engagement: dataset.Round(groups[m].mean(), 2),
		})
	}
	return out
}

// barHashtagData sums reach per hashtag token, keeping tokens longer
// than one character, and returns the top ten.
func barHashtagData(t *dataset.Table, tagCol, reachCol string) []HashtagReach {
	sums := make(map[string]float64)
	for _, r := range t.Rows() {
		cell := r[tagCol]
		if cell == nil {
			continue
		}
		reach := cellNum(r, reachCol)
		for _, tag := range splitTags(dataset.Text(cell)) {
			if len(tag) > 1 {
				sums[tag] += reach
			}
		}
	}

	type tagReach struct {
		tag   string
		reach float64
	}
	ranked := make([]tagReach, 0, len(sums))
	for tag, reach := range sums {
		ranked = append(ranked, tagReach{tag, reach})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].reach != ranked[j].reach {
			return ranked[i].reach > ranked[j].reach
		}
		return ranked[i].tag < ranked[j].tag
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	out := make([]HashtagReach, 0, len(ranked))
	for _, tr := range ranked {
		out = append(out, HashtagReach{Hashtag: tr.tag, Reach: int(tr.reach)})
	}
	return out
}

// scatterData plots up to maxScatterPosts posts. Small tables keep row
// order; larger ones are sampled without replacement from a fixed seed
// so repeated requests draw the same chart.
func scatterData(t *dataset.Table, engCol, reachCol, ctCol string) []ScatterPost {
	n := t.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n > maxScatterPosts {
		rng := rand.New(rand.NewSource(dashboardSampleSeed))
		idx = rng.Perm(n)[:maxScatterPosts]
	}

	out := make([]ScatterPost, 0, len(idx))
	for _, i := range idx {
		r := t.Row(i)
		name := "Post"
		if ctCol != "" {
			if s := dataset.Text(r[ctCol]); s != "" {
				name = s
			}
		}
		out = append(out, ScatterPost{
			X:    int(cellNum(r, reachCol)),
			Y:    dataset.Round(cellNum(r, engCol), 2),
			Name: name,
		})
	}
	return out
}

func topPostsData(t *dataset.Table, engCol, platCol, ctCol string) []NamedEngagement {
	type cand struct {
		idx  int
		rate float64
	}
	cands := make([]cand, 0, t.Len())
	for i, r := range t.Rows() {
		cands = append(cands, cand{i, cellNum(r, engCol)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].rate > cands[j].rate })
	if len(cands) > 5 {
		cands = cands[:5]
	}

	out := make([]NamedEngagement, 0, len(cands))
	for _, c := range cands {
		r := t.Row(c.idx)
		name := "Post"
		if platCol != "" && ctCol != "" {
			name = fmt.Sprintf("%s - %s", dataset.Text(r[platCol]), dataset.Text(r[ctCol]))
		}
		out = append(out, NamedEngagement{Name: name, Engagement: dataset.Round(c.rate, 2)})
	}
	return out
}

func areaReachData(t *dataset.Table, dateCol, reachCol string) []DateReach {
	sums := make(map[string]float64)
	for _, r := range t.Rows() {
		d, ok := cellDate(r[dateCol])
		if !ok {
			continue
		}
		sums[d.Format("2006-01-02")] += cellNum(r, reachCol)
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]DateReach, 0, len(dates))
	for _, date := range dates {
		out = append(out, DateReach{Date: date, Reach: int(sums[date])})
	}
	return out
}

func barHourData(t *dataset.Table, hourCol, engCol string) []HourEngagement {
	groups := make(map[float64]*meanAgg)
	for _, r := range t.Rows() {
		h, ok := dataset.Float(r[hourCol])
		if !ok {
			continue
		}
		g := groups[h]
		if g == nil {
			g = &meanAgg{}
			groups[h] = g
		}
		g.add(cellNum(r, engCol))
	}

	hours := make([]float64, 0, len(groups))
	for h := range groups {
		hours = append(hours, h)
	}
	sort.Float64s(hours)

	out := make([]HourEngagement, 0, len(hours))
	for _, h := range hours {
		out = append(out, HourEngagement{
			Hour:       fmt.Sprintf("%d:00", int(h)),
			Engagement: dataset.Round(groups[h].mean(), 2),
		})
	}
	return out
}

// peakTime picks the hour with the highest mean engagement, earliest
// hour winning ties.
func peakTime(t *dataset.Table, hourCol, engCol string) string {
	groups := make(map[float64]*meanAgg)
	for _, r := range t.Rows() {
		h, ok := dataset.Float(r[hourCol])
		if !ok {
			continue
		}
		g := groups[h]
		if g == nil {
			g = &meanAgg{}
			groups[h] = g
		}
		g.add(cellNum(r, engCol))
	}
	if len(groups) == 0 {
		return "N/A"
	}

	hours := make([]float64, 0, len(groups))
	for h := range groups {
		hours = append(hours, h)
	}
	sort.Float64s(hours)

	best, bestMean := hours[0], math.Inf(-1)
	for _, h := range hours {
		if m := groups[h].mean(); m > bestMean {
			best, bestMean = h, m
		}
	}
	return fmt.Sprintf("%d:00", int(best))
}
