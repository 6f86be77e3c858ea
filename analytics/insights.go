// Package analytics aggregates processed post tables into the insight
// and dashboard payloads served by the API.
package analytics

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/mlengine"
)

// Caption length strategy labels. Medium doubles as the default advice
// when caption lengths cannot be ranked.
const (
	captionShort  = "Short (<50 chars)"
	captionMedium = "Medium (50-150 chars)"
	captionLong   = "Long (>150 chars)"
)

var tagSeparator = regexp.MustCompile(`[\s,]+`)

var shortDayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BestTime is one recommended posting hour.
type BestTime struct {
	Hour          int     `json:"hour"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// BestDay names the weekday with the highest mean engagement.
type BestDay struct {
	Day           string  `json:"day"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// HashtagInsight ranks one hashtag by mean engagement across posts.
type HashtagInsight struct {
	Hashtag       string  `json:"hashtag"`
	AvgEngagement float64 `json:"avg_engagement"`
	Count         int     `json:"count"`
}

// DistributionBucket counts posts falling into one engagement range.
type DistributionBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TopPost is one of the highest-engagement posts.
type TopPost struct {
	Platform       string  `json:"platform"`
	ContentType    string  `json:"content_type"`
	EngagementRate float64 `json:"engagement_rate"`
	Reach          int     `json:"reach"`
}

// PlatformEngagement is the mean engagement of one platform.
type PlatformEngagement struct {
	Platform   string  `json:"platform"`
	Engagement float64 `json:"engagement"`
}

// Insights is the recommendation payload for one filter combination.
// PredictedEngagement and PredictedClass are nil when no trained model
// is available.
type Insights struct {
	BestTimes              []BestTime           `json:"best_times"`
	BestDay                BestDay              `json:"best_day"`
	BestCaptionLength      string               `json:"best_caption_length"`
	BestHashtags           []HashtagInsight     `json:"best_hashtags"`
	PredictedEngagement    *float64             `json:"predicted_engagement"`
	PredictedClass         *string              `json:"predicted_class"`
	EngagementDistribution []DistributionBucket `json:"engagement_distribution"`
	TopPosts               []TopPost            `json:"top_posts"`
	PlatformEngagement     []PlatformEngagement `json:"platform_engagement"`
	AverageReach           float64              `json:"average_reach"`
}

// BuildInsights aggregates the table into posting recommendations.
// Filters apply only when the value actually occurs in the table, and
// a combination matching nothing falls back to the full table.
func BuildInsights(t *dataset.Table, f mlengine.Filter, store mlengine.Store) *Insights {
	filtered := applyInsightFilters(t, f)

	in := &Insights{
		BestTimes:              []BestTime{},
		BestDay:                BestDay{Day: "N/A"},
		BestCaptionLength:      captionMedium,
		BestHashtags:           []HashtagInsight{},
		EngagementDistribution: []DistributionBucket{},
		TopPosts:               []TopPost{},
		PlatformEngagement:     []PlatformEngagement{},
	}

	engCol, hasEng := filtered.Resolve(dataset.FieldEngagementRate)

	if hourCol, ok := filtered.Resolve(dataset.FieldHour); ok && hasEng {
		in.BestTimes = bestTimes(filtered, hourCol, engCol)
	}
	if dayCol, ok := filtered.Resolve(dataset.FieldDayOfWeek); ok && hasEng {
		in.BestDay = bestDay(filtered, dayCol, engCol)
	}
	if capCol, ok := filtered.Resolve(dataset.FieldCaptionLength); ok && hasEng {
		in.BestCaptionLength = bestCaptionLength(filtered, capCol, engCol)
	}
	if tagCol, ok := filtered.Resolve(dataset.FieldHashtags); ok && hasEng {
		in.BestHashtags = bestHashtags(filtered, tagCol, engCol)
	}

	if store != nil {
		if v, err := mlengine.PredictEngagement(filtered, f, store); err == nil {
			rounded := dataset.Round(v, 2)
			in.PredictedEngagement = &rounded
		}
		if level, err := mlengine.PredictLevel(filtered, f, store); err == nil {
			in.PredictedClass = &level
		}
	}

	if hasEng {
		in.EngagementDistribution = engagementDistribution(filtered, engCol)
		in.TopPosts = topPosts(filtered, engCol)
	}
	if platCol, ok := filtered.Resolve(dataset.FieldPlatform); ok && hasEng {
		in.PlatformEngagement = platformEngagement(filtered, platCol, engCol)
	}
	if reachCol, ok := filtered.Resolve(dataset.FieldReach); ok {
		if mean, ok := dataset.Mean(filtered.Column(reachCol)); ok {
			in.AverageReach = dataset.Round(mean, 2)
		}
	}
	return in
}

// applyInsightFilters narrows the table, checking each filter value
// against the unfiltered table first so a stale selector is ignored
// rather than zeroing out every insight.
func applyInsightFilters(t *dataset.Table, f mlengine.Filter) *dataset.Table {
	filtered := t
	if col, ok := t.Resolve(dataset.FieldPlatform); ok && f.Platform != "" && columnContains(t, col, f.Platform) {
		filtered = filtered.Filter(func(r dataset.Row) bool {
			return dataset.Text(r[col]) == f.Platform
		})
	}
	if col, ok := t.Resolve(dataset.FieldContentType); ok && f.ContentType != "" && columnContains(t, col, f.ContentType) {
		filtered = filtered.Filter(func(r dataset.Row) bool {
			return dataset.Text(r[col]) == f.ContentType
		})
	}
	if filtered.Len() == 0 {
		return t
	}
	return filtered
}

func columnContains(t *dataset.Table, col, want string) bool {
	for _, r := range t.Rows() {
		if dataset.Text(r[col]) == want {
			return true
		}
	}
	return false
}

type meanAgg struct {
	sum float64
	n   int
}

func (a *meanAgg) add(v float64) {
	a.sum += v
	a.n++
}

func (a *meanAgg) mean() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}

func bestTimes(t *dataset.Table, hourCol, engCol string) []BestTime {
	groups := make(map[float64]*meanAgg)
	for _, r := range t.Rows() {
		h, ok := dataset.Float(r[hourCol])
		if !ok {
			continue
		}
		e, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		g := groups[h]
		if g == nil {
			g = &meanAgg{}
			groups[h] = g
		}
		g.add(e)
	}

	type hourMean struct {
		hour float64
		mean float64
	}
	ranked := make([]hourMean, 0, len(groups))
	for h, g := range groups {
		ranked = append(ranked, hourMean{h, g.mean()})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].mean != ranked[j].mean {
			return ranked[i].mean > ranked[j].mean
		}
		return ranked[i].hour < ranked[j].hour
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	times := make([]BestTime, 0, len(ranked))
	for _, hm := range ranked {
		times = append(times, BestTime{Hour: int(hm.hour), AvgEngagement: dataset.Round(hm.mean, 2)})
	}
	return times
}

func bestDay(t *dataset.Table, dayCol, engCol string) BestDay {
	groups := make(map[float64]*meanAgg)
	for _, r := range t.Rows() {
		d, ok := dataset.Float(r[dayCol])
		if !ok {
			continue
		}
		e, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		g := groups[d]
		if g == nil {
			g = &meanAgg{}
			groups[d] = g
		}
		g.add(e)
	}
	if len(groups) == 0 {
		return BestDay{Day: "N/A"}
	}

	bestVal, bestMean := 0.0, math.Inf(-1)
	days := make([]float64, 0, len(groups))
	for d := range groups {
		days = append(days, d)
	}
	sort.Float64s(days)
	for _, d := range days {
		if m := groups[d].mean(); m > bestMean {
			bestVal, bestMean = d, m
		}
	}
	return BestDay{Day: dayName(bestVal), AvgEngagement: dataset.Round(bestMean, 2)}
}

func dayName(v float64) string {
	if v == math.Trunc(v) && v >= 0 && v <= 6 {
		return shortDayNames[int(v)]
	}
	return dataset.Text(v)
}

func bestCaptionLength(t *dataset.Table, capCol, engCol string) string {
	groups := make(map[string]*meanAgg)
	for _, r := range t.Rows() {
		e, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		bucket := captionBucket(r[capCol])
		g := groups[bucket]
		if g == nil {
			g = &meanAgg{}
			groups[bucket] = g
		}
		g.add(e)
	}
	if len(groups) == 0 {
		return captionMedium
	}

	buckets := make([]string, 0, len(groups))
	for b := range groups {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)
	best, bestMean := captionMedium, math.Inf(-1)
	for _, b := range buckets {
		if m := groups[b].mean(); m > bestMean {
			best, bestMean = b, m
		}
	}
	return best
}

func captionBucket(v any) string {
	f, ok := dataset.Float(v)
	if !ok {
		return captionMedium
	}
	switch {
	case f < 50:
		return captionShort
	case f <= 150:
		return captionMedium
	default:
		return captionLong
	}
}

func bestHashtags(t *dataset.Table, tagCol, engCol string) []HashtagInsight {
	groups := make(map[string]*meanAgg)
	for _, r := range t.Rows() {
		e, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		cell := r[tagCol]
		if cell == nil {
			continue
		}
		for _, tag := range splitTags(dataset.Text(cell)) {
			g := groups[tag]
			if g == nil {
				g = &meanAgg{}
				groups[tag] = g
			}
			g.add(e)
		}
	}

	type tagMean struct {
		tag  string
		mean float64
		n    int
	}
	ranked := make([]tagMean, 0, len(groups))
	for tag, g := range groups {
		ranked = append(ranked, tagMean{tag, g.mean(), g.n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].mean != ranked[j].mean {
			return ranked[i].mean > ranked[j].mean
		}
		return ranked[i].tag < ranked[j].tag
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	tags := make([]HashtagInsight, 0, len(ranked))
	for _, tm := range ranked {
		tags = append(tags, HashtagInsight{
			Hashtag:       tm.tag,
			AvgEngagement: dataset.Round(tm.mean, 2),
			Count:         tm.n,
		})
	}
	return tags
}

// splitTags breaks a hashtag cell on whitespace and commas, dropping
// empty tokens.
func splitTags(s string) []string {
	parts := tagSeparator.Split(s, -1)
	tags := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// engagementDistribution buckets rates into 2% ranges, ordered by
// bucket start.
func engagementDistribution(t *dataset.Table, engCol string) []DistributionBucket {
	counts := make(map[int]int)
	for _, r := range t.Rows() {
		v, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		counts[int(math.Floor(v/2))*2]++
	}

	starts := make([]int, 0, len(counts))
	for b := range counts {
		starts = append(starts, b)
	}
	sort.Ints(starts)

	buckets := make([]DistributionBucket, 0, len(starts))
	for _, b := range starts {
		buckets = append(buckets, DistributionBucket{
			Range: fmt.Sprintf("%d-%d%%", b, b+2),
			Count: counts[b],
		})
	}
	return buckets
}

func topPosts(t *dataset.Table, engCol string) []TopPost {
	platCol, _ := t.Resolve(dataset.FieldPlatform)
	ctCol, _ := t.Resolve(dataset.FieldContentType)
	reachCol, _ := t.Resolve(dataset.FieldReach)

	type cand struct {
		idx  int
		rate float64
	}
	cands := make([]cand, 0, t.Len())
	for i, r := range t.Rows() {
		if v, ok := dataset.Float(r[engCol]); ok {
			cands = append(cands, cand{i, v})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].rate > cands[j].rate })
	if len(cands) > 5 {
		cands = cands[:5]
	}

	posts := make([]TopPost, 0, len(cands))
	for _, c := range cands {
		r := t.Row(c.idx)
		post := TopPost{
			Platform:       cellText(r, platCol, "Unknown"),
			ContentType:    cellText(r, ctCol, "Unknown"),
			EngagementRate: dataset.Round(c.rate, 2),
		}
		if reachCol != "" {
			if v, ok := dataset.Float(r[reachCol]); ok {
				post.Reach = int(v)
			}
		}
		posts = append(posts, post)
	}
	return posts
}

func cellText(r dataset.Row, col, fallback string) string {
	if col == "" {
		return fallback
	}
	if s := dataset.Text(r[col]); s != "" {
		return s
	}
	return fallback
}

func platformEngagement(t *dataset.Table, platCol, engCol string) []PlatformEngagement {
	groups := make(map[string]*meanAgg)
	for _, r := range t.Rows() {
		name := dataset.Text(r[platCol])
		if name == "" {
			continue
		}
		e, ok := dataset.Float(r[engCol])
		if !ok {
			continue
		}
		g := groups[name]
		if g == nil {
			g = &meanAgg{}
			groups[name] = g
		}
		g.add(e)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PlatformEngagement, 0, len(names))
	for _, name := range names {
		out = append(out, PlatformEngagement{
			Platform:   name,
			Engagement: dataset.Round(groups[name].mean(), 2),
		})
	}
	return out
}
