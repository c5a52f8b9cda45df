package response

import "github.com/solenechen/empath/internal/analysis/emotion"

// FollowUps maps a primary emotion to follow-up conversation suggestions.
// Keyed by emotion only; repetition tracking does not apply here.
type FollowUps map[emotion.Category][]string

// DefaultFollowUps returns the built-in follow-up bank.
func DefaultFollowUps() FollowUps {
	return FollowUps{
		emotion.Joy: {
			"Tell me more about what made this so special.",
			"How do you plan to build on this positive moment?",
			"What other good things have been happening lately?",
		},
		emotion.Sadness: {
			"Would you like to share more about what's troubling you?",
			"Is there anything specific that might help you feel better?",
			"How can I best support you right now?",
		},
		emotion.Anger: {
			"Would you like to talk through what happened?",
			"What do you think would help resolve this situation?",
			"How would you like to see this improve?",
		},
		emotion.Fear: {
			"What specific aspects concern you most?",
			"What might help you feel more prepared or confident?",
			"Would it help to break this down into smaller steps?",
		},
		emotion.Surprise: {
			"How are you processing this unexpected development?",
			"What do you think this means for you going forward?",
			"Has this changed your perspective on anything?",
		},
		emotion.Disgust: {
			"What about the situation bothered you the most?",
			"Is this something you can keep at a distance?",
			"What would a better version of this look like?",
		},
		emotion.Neutral: {
			"What's been on your mind lately?",
			"Is there anything you'd like to explore or discuss?",
			"How has your day been going?",
		},
	}
}

// responseTypes labels the kind of reply each emotion calls for. Exposed in
// turn metadata for observability.
var responseTypes = map[emotion.Category]string{
	emotion.Joy:      "celebratory",
	emotion.Sadness:  "supportive",
	emotion.Anger:    "validating",
	emotion.Fear:     "reassuring",
	emotion.Surprise: "curious",
	emotion.Disgust:  "understanding",
	emotion.Neutral:  "engaging",
}

// continuityPrefixes open the reply when the same emotion has persisted over
// the most recent turns.
var continuityPrefixes = map[emotion.Category]string{
	emotion.Sadness: "I notice you're still feeling down. ",
	emotion.Anger:   "I can see this is still bothering you. ",
	emotion.Fear:    "I understand this worry is persisting. ",
	emotion.Joy:     "Your happiness continues to shine through! ",
}
