package service

import (
	"sort"
	"strings"
	"unicode"

	"wellbeing-client/internal/domain/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFrequentEmotions is how many emotions the summaries list.
const DefaultFrequentEmotions = 5

// EmotionInfo is the display data for an emotion key sent by the backend.
type EmotionInfo struct {
	Key   string
	Label string
	Emoji string
}

// Keys are stored without accents; lookups fold accents and case first.
var emotionCatalogue = []EmotionInfo{
	{Key: "alegria", Label: "Joy", Emoji: "😊"},
	{Key: "tristeza", Label: "Sadness", Emoji: "😢"},
	{Key: "ansiedad", Label: "Anxiety", Emoji: "😰"},
	{Key: "enojo", Label: "Anger", Emoji: "😠"},
	{Key: "miedo", Label: "Fear", Emoji: "😨"},
	{Key: "sorpresa", Label: "Surprise", Emoji: "😲"},
	{Key: "calma", Label: "Calm", Emoji: "😌"},
	{Key: "frustracion", Label: "Frustration", Emoji: "😤"},
	{Key: "neutral", Label: "Neutral", Emoji: "😐"},
}

var emotionsByKey = func() map[string]EmotionInfo {
	m := make(map[string]EmotionInfo, len(emotionCatalogue))
	for _, e := range emotionCatalogue {
		m[e.Key] = e
	}
	return m
}()

// NormalizeEmotion lowercases s and strips diacritics ("Frustración" -> "frustracion").
func NormalizeEmotion(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// LookupEmotion returns the display info for an emotion, falling back to
// neutral for empty or unknown values.
func LookupEmotion(emotion string) EmotionInfo {
	if info, ok := emotionsByKey[NormalizeEmotion(emotion)]; ok {
		return info
	}
	return emotionsByKey["neutral"]
}

// Emotions lists every known emotion in display order.
func Emotions() []EmotionInfo {
	out := make([]EmotionInfo, len(emotionCatalogue))
	copy(out, emotionCatalogue)
	return out
}

// MoodDescription describes a 1-10 mood level.
func MoodDescription(level float64) string {
	switch {
	case level <= 2:
		return "Very low"
	case level <= 4:
		return "Low"
	case level <= 6:
		return "Moderate"
	case level <= 8:
		return "Good"
	case level <= 9:
		return "Very good"
	default:
		return "Excellent"
	}
}

// AverageMood is the mean mood level rounded to one decimal, or 0 when empty.
func AverageMood(records []entity.EmotionalRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum int64
	for _, r := range records {
		sum += int64(r.MoodLevel)
	}
	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(records)))).
		Round(1)
	return avg.InexactFloat64()
}

// EmotionCount is how often an emotion was recorded.
type EmotionCount struct {
	Emotion string
	Count   int
	Info    EmotionInfo
}

// FrequentEmotions returns up to limit emotions ordered by count, most
// frequent first. Ties keep the order in which emotions first appear.
// Emotions are grouped by their accent-folded key and records without an
// emotion are skipped.
func FrequentEmotions(records []entity.EmotionalRecord, limit int) []EmotionCount {
	if limit <= 0 {
		limit = DefaultFrequentEmotions
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		key := NormalizeEmotion(r.PrimaryEmotion)
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	result := make([]EmotionCount, 0, len(order))
	for _, e := range order {
		result = append(result, EmotionCount{Emotion: e, Count: counts[e], Info: LookupEmotion(e)})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// MoodSummary is the local aggregation shown next to the history charts.
type MoodSummary struct {
	Records     int
	AverageMood float64
	Description string
	Frequent    []EmotionCount
	HighRisk    int
}

func Summarize(records []entity.EmotionalRecord, limit int) MoodSummary {
	summary := MoodSummary{
		Records:     len(records),
		AverageMood: AverageMood(records),
		Frequent:    FrequentEmotions(records, limit),
		Description: "No data",
	}
	if len(records) > 0 {
		summary.Description = MoodDescription(summary.AverageMood)
	}
	for i := range records {
		if records[i].IsHighRisk() {
			summary.HighRisk++
		}
	}
	return summary
}
