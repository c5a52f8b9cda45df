package chat

import (
	"context"
	"strings"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/model/chat"
)

// positiveEmotions and negativeEmotions drive the trend direction heuristic.
var positiveEmotions = map[emotion.Category]bool{
	emotion.Joy:      true,
	emotion.Surprise: true,
}

var negativeEmotions = map[emotion.Category]bool{
	emotion.Sadness: true,
	emotion.Anger:   true,
	emotion.Fear:    true,
	emotion.Disgust: true,
}

// Trend direction labels.
const (
	TrendStable       = "stable"
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
	TrendMixed        = "mixed"
	TrendInsufficient = "insufficient_data"
)

// Analytics computes session analytics over the last window turns (window <= 0
// means all). Pure read over history; the tracker is never mutated.
func (s *Service) Analytics(ctx context.Context, sessionID string, window int) (chat.Analytics, error) {
	history, err := s.Transcript(ctx, sessionID)
	if err != nil {
		return chat.Analytics{}, err
	}

	total := len(history)
	if window <= 0 || window > total {
		window = total
	}
	turns := history[total-window:]

	distribution := make(map[emotion.Category]int)
	trend := make([]chat.TrendPoint, 0, len(turns))
	emotions := make([]emotion.Category, 0, len(turns))
	lastSeen := make(map[emotion.Category]int)

	for i, turn := range turns {
		primary := turn.Classification.Primary
		distribution[primary]++
		lastSeen[primary] = i
		emotions = append(emotions, primary)
		trend = append(trend, chat.TrendPoint{
			Emotion:    primary,
			Confidence: turn.Classification.Confidence,
		})
	}

	dominant := dominantEmotion(distribution, lastSeen)
	variability := 0.0
	if window > 0 {
		variability = float64(len(distribution)) / float64(window)
	}

	return chat.Analytics{
		DominantEmotion: dominant,
		Trend:           trend,
		TrendDirection:  overallDirection(emotions),
		Variability:     variability,
		Distribution:    distribution,
		Recommendations: recommendations(dominant, variability),
		TotalTurns:      total,
		Window:          window,
	}, nil
}

// Summary aggregates the whole-session view: distribution, themes, quality
// and recommendations.
func (s *Service) Summary(ctx context.Context, sessionID string) (chat.Summary, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return chat.Summary{}, err
	}
	analytics, err := s.Analytics(ctx, sessionID, 0)
	if err != nil {
		return chat.Summary{}, err
	}
	history, err := s.Transcript(ctx, sessionID)
	if err != nil {
		return chat.Summary{}, err
	}

	return chat.Summary{
		SessionID:       session.ID,
		Context:         session.Context,
		TotalTurns:      analytics.TotalTurns,
		DominantEmotion: analytics.DominantEmotion,
		Distribution:    analytics.Distribution,
		TrendDirection:  analytics.TrendDirection,
		Themes:          identifyThemes(history),
		Quality:         assessQuality(history),
		Recommendations: analytics.Recommendations,
	}, nil
}

// dominantEmotion is the mode of the primary emotions; ties go to the one
// seen most recently.
func dominantEmotion(distribution map[emotion.Category]int, lastSeen map[emotion.Category]int) emotion.Category {
	dominant := emotion.Neutral
	bestCount := 0
	bestSeen := -1
	for _, c := range emotion.Categories() {
		count := distribution[c]
		if count == 0 {
			continue
		}
		if count > bestCount || (count == bestCount && lastSeen[c] > bestSeen) {
			dominant = c
			bestCount = count
			bestSeen = lastSeen[c]
		}
	}
	return dominant
}

// direction classifies a run of emotions by comparing positive and negative
// counts.
func direction(emotions []emotion.Category) string {
	if len(emotions) == 0 {
		return TrendInsufficient
	}

	distinct := make(map[emotion.Category]bool)
	var pos, neg int
	for _, e := range emotions {
		distinct[e] = true
		if positiveEmotions[e] {
			pos++
		}
		if negativeEmotions[e] {
			neg++
		}
	}

	switch {
	case len(distinct) == 1:
		return TrendStable
	case pos > neg:
		return TrendImproving
	case neg > pos:
		return TrendDeclining
	default:
		return TrendMixed
	}
}

// overallDirection combines a short window (last 3) and a medium window
// (last 7): agreement wins, disagreement reads as mixed.
func overallDirection(emotions []emotion.Category) string {
	if len(emotions) < 3 {
		return TrendInsufficient
	}

	short := direction(tail(emotions, 3))
	medium := direction(tail(emotions, 7))
	if short == medium {
		return short
	}
	return TrendMixed
}

func tail(emotions []emotion.Category, n int) []emotion.Category {
	if len(emotions) <= n {
		return emotions
	}
	return emotions[len(emotions)-n:]
}

// recommendations are static strings chosen by simple rules on the dominant
// emotion and volatility.
func recommendations(dominant emotion.Category, variability float64) []string {
	var out []string

	switch {
	case negativeEmotions[dominant]:
		out = append(out,
			"Consider focusing on positive coping strategies.",
			"Professional support might be beneficial if these feelings persist.",
		)
	case dominant == emotion.Joy:
		out = append(out,
			"Great to see positive emotions! Keep building on what's working.",
		)
	default:
		out = append(out,
			"Keep the conversation going to get a clearer emotional picture.",
		)
	}

	if variability > 0.6 {
		out = append(out, "Emotions are shifting quickly; a moment of reflection could help ground things.")
	}
	return out
}

var themeKeywords = map[string][]string{
	"work":            {"work", "job", "career", "colleague", "boss", "office", "meeting", "promoted"},
	"relationships":   {"friend", "family", "partner", "relationship", "love", "dating"},
	"health":          {"tired", "sick", "health", "doctor", "medicine", "pain"},
	"personal_growth": {"learning", "goal", "achievement", "success", "failure", "improve"},
	"daily_life":      {"day", "morning", "evening", "home", "routine", "schedule"},
}

var themeOrder = []string{"work", "relationships", "health", "personal_growth", "daily_life"}

// identifyThemes does simple keyword spotting over the user side of the
// transcript. At most three themes, in a fixed scan order for determinism.
func identifyThemes(history []chat.Turn) []string {
	var builder strings.Builder
	for _, turn := range history {
		builder.WriteString(strings.ToLower(turn.UserText))
		builder.WriteString(" ")
	}
	all := builder.String()

	var themes []string
	for _, theme := range themeOrder {
		for _, keyword := range themeKeywords[theme] {
			if strings.Contains(all, keyword) {
				themes = append(themes, theme)
				break
			}
		}
		if len(themes) == 3 {
			break
		}
	}
	return themes
}

// assessQuality grades conversation depth from message length and emotional
// variety.
func assessQuality(history []chat.Turn) chat.Quality {
	if len(history) == 0 {
		return chat.Quality{Grade: "unknown", Depth: "shallow"}
	}

	var totalChars int
	variety := make(map[emotion.Category]bool)
	for _, turn := range history {
		totalChars += len(turn.UserText)
		variety[turn.Classification.Primary] = true
	}
	avgChars := float64(totalChars) / float64(len(history))

	grade := "basic"
	if avgChars > 30 && len(variety) > 4 {
		grade = "good"
	}
	depth := "moderate"
	if len(history) > 5 && len(variety) > 6 {
		depth = "deep"
	}

	engagement := len(history) + len(variety)
	if engagement > 10 {
		engagement = 10
	}

	return chat.Quality{
		Grade:           grade,
		Depth:           depth,
		EngagementScore: engagement,
		EmotionVariety:  len(variety),
		AvgMessageChars: avgChars,
	}
}
