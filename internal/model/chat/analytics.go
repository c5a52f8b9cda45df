package chat

import "github.com/solenechen/empath/internal/analysis/emotion"

// TrendPoint is one (emotion, confidence) sample in chronological order.
type TrendPoint struct {
	Emotion    emotion.Category `json:"emotion"`
	Confidence float64          `json:"confidence"`
}

// Analytics summarizes emotional movement over a window of turns. Derived on
// demand from history; never cached or persisted.
type Analytics struct {
	DominantEmotion emotion.Category         `json:"dominantEmotion"`
	Trend           []TrendPoint             `json:"trend"`
	TrendDirection  string                   `json:"trendDirection"`
	Variability     float64                  `json:"variabilityScore"`
	Distribution    map[emotion.Category]int `json:"emotionDistribution"`
	Recommendations []string                 `json:"recommendations"`
	TotalTurns      int                      `json:"totalTurns"`
	Window          int                      `json:"window"`
}

// Quality grades how open and engaged the conversation has been.
type Quality struct {
	Grade           string  `json:"grade"`
	Depth           string  `json:"depth"`
	EngagementScore int     `json:"engagementScore"`
	EmotionVariety  int     `json:"emotionVariety"`
	AvgMessageChars float64 `json:"avgMessageChars"`
}

// Summary aggregates the whole-session view exposed at session end.
type Summary struct {
	SessionID       string                   `json:"sessionId"`
	Context         emotion.Context          `json:"culturalContext"`
	TotalTurns      int                      `json:"totalTurns"`
	DominantEmotion emotion.Category         `json:"dominantEmotion"`
	Distribution    map[emotion.Category]int `json:"emotionDistribution"`
	TrendDirection  string                   `json:"trendDirection"`
	Themes          []string                 `json:"themes"`
	Quality         Quality                  `json:"quality"`
	Recommendations []string                 `json:"recommendations"`
}
