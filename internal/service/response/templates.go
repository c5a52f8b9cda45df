package response

import (
	"fmt"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

// Bank maps (emotion, cultural context) to an ordered list of reply
// templates. Templates may carry an {intensity} placeholder that rendering
// replaces with a confidence-derived qualifier. Static configuration,
// read-only at runtime.
type Bank map[emotion.Category]map[emotion.Context][]string

// genericNeutralTemplate is the last resort of the fallback chain before the
// fixed apology.
const genericNeutralTemplate = "I hear you, and I'm here to listen."

// apologyTemplate is returned if the whole fallback chain is misconfigured;
// replying with nothing is never acceptable.
const apologyTemplate = "I'm sorry, I'm having trouble finding the right words right now. Could you tell me a little more?"

// Validate rejects unknown categories or contexts and empty template lists at
// load time. Every category must at least have templates for the default
// context so the fallback chain can always terminate.
func (b Bank) Validate() error {
	for category, perContext := range b {
		if _, ok := emotion.ParseCategory(string(category)); !ok {
			return fmt.Errorf("template bank references unknown category %q", category)
		}
		for ctx, templates := range perContext {
			if _, ok := emotion.ParseContext(string(ctx)); !ok {
				return fmt.Errorf("template bank for %q references unknown context %q", category, ctx)
			}
			for i, t := range templates {
				if t == "" {
					return fmt.Errorf("template bank %s/%s entry %d is empty", category, ctx, i)
				}
			}
		}
	}
	for _, category := range emotion.Categories() {
		if len(b[category][emotion.Default]) == 0 {
			return fmt.Errorf("template bank missing default templates for category %q", category)
		}
	}
	return nil
}

// DefaultBank returns the built-in reply templates, swappable via the
// template YAML override.
func DefaultBank() Bank {
	return Bank{
		emotion.Joy: {
			emotion.Western: {
				"That's fantastic news! It sounds like you're {intensity} happy about this, and you've earned every bit of it.",
				"Congratulations! I can feel the excitement in your words. What part of it means the most to you?",
				"Amazing! Moments like this deserve to be celebrated properly.",
			},
			emotion.Eastern: {
				"It brings me quiet joy to hear this. Such moments of good fortune reflect your steady effort.",
				"What wonderful news. May this happiness settle gently and stay with you.",
				"I am glad that harmony and reward have found their way to you.",
			},
			emotion.Default: {
				"That sounds like something really worth celebrating. I'm glad you shared it.",
				"I can tell this means a lot to you. It's lovely to hear some good news.",
				"That's great to hear! What made this moment so special?",
			},
		},
		emotion.Sadness: {
			emotion.Western: {
				"I'm so sorry you're going through this. It's completely okay to feel {intensity} down about it.",
				"That sounds really hard. You don't have to carry this alone — I'm here to listen.",
				"I hear how much this hurts. Take whatever time you need to feel it.",
			},
			emotion.Eastern: {
				"I respectfully acknowledge the weight you are carrying. Like clouds, even heavy feelings pass in time.",
				"Such sorrow is a natural part of the path. May you be gentle with yourself as it moves through you.",
				"I am here beside your words. There is no need to hurry away from this feeling.",
			},
			emotion.Default: {
				"It sounds like you're feeling {intensity} low right now. I'm here with you.",
				"I'm sorry things feel heavy. Would it help to talk through what's weighing on you?",
				"That sounds painful. Thank you for trusting me with it.",
			},
		},
		emotion.Anger: {
			emotion.Western: {
				"I can hear how {intensity} angry you are, and honestly, it sounds justified.",
				"You have every right to be frustrated about this. Anyone in your position would feel the same.",
				"That's genuinely infuriating. Do you want to talk through exactly what happened?",
			},
			emotion.Eastern: {
				"I recognize the deep frustration this has caused you. Such feelings arise when one's sense of fairness is disturbed.",
				"Your anger speaks of a value that matters to you. What might help restore balance here?",
				"It is understandable to feel this discord. Perhaps quiet reflection can reveal a path forward.",
			},
			emotion.Default: {
				"It sounds like you're dealing with something {intensity} frustrating. That makes complete sense.",
				"It's understandable to feel angry given what you've described. I'm here if you need to vent.",
				"That would bother anyone. What do you think would help most right now?",
			},
		},
		emotion.Fear: {
			emotion.Western: {
				"It makes sense to feel {intensity} anxious about this. Naming the worry is already a solid first step.",
				"That sounds scary, and your concern is completely valid. Want to break it down into smaller pieces?",
				"I hear the worry in your words. You don't have to face this all at once.",
			},
			emotion.Eastern: {
				"It is natural for the mind to grow unquiet before the unknown. May you find steadiness in small, sure steps.",
				"I acknowledge the unease you carry. Like fog, uncertainty thins as one walks gently forward.",
				"Your caution shows care. What small preparation might bring you a measure of peace?",
			},
			emotion.Default: {
				"It sounds like this is making you {intensity} uneasy. That's a very human response.",
				"Worry like this usually means something matters to you. What part concerns you most?",
				"I hear you. Would it help to think through what's within your control?",
			},
		},
		emotion.Surprise: {
			emotion.Western: {
				"Wow, that's quite a turn of events! How are you processing it?",
				"I did not see that coming either! What was your first reaction?",
				"That's genuinely surprising. Does it change things for you going forward?",
			},
			emotion.Eastern: {
				"Life has offered you an unexpected turn. How does it sit with you now that the first moment has passed?",
				"The unforeseen can unsettle and teach in equal measure. What do you make of it?",
				"Such sudden news takes time to settle. There is no rush to decide how to feel.",
			},
			emotion.Default: {
				"That sounds {intensity} unexpected! How are you feeling about it now?",
				"Quite a surprise. What do you think it means for you?",
				"Unexpected moments like that can be a lot to take in. I'm listening.",
			},
		},
		emotion.Disgust: {
			emotion.Western: {
				"Ugh, that sounds {intensity} awful to deal with. Your reaction is totally understandable.",
				"That's genuinely off-putting. I don't blame you for feeling repelled by it.",
				"Yeah, that would turn my stomach too. How are you handling it?",
			},
			emotion.Eastern: {
				"I understand this has deeply offended your sensibilities. Such aversion often guards what we value.",
				"It is natural to turn away from what feels wrong. May you find cleaner ground to stand on.",
				"Your distaste is heard and respected. What would feel right instead?",
			},
			emotion.Default: {
				"That does sound {intensity} unpleasant. It makes sense that it put you off.",
				"I understand why that bothered you so much. Your reaction is valid.",
				"That's a fair response to something so distasteful. Do you want to talk it through?",
			},
		},
		emotion.Neutral: {
			emotion.Western: {
				"Thanks for sharing that. What's been on your mind lately?",
				"Got it. Is there anything you'd like to dig into together?",
				"I'm with you. How has the rest of your day been going?",
			},
			emotion.Eastern: {
				"Thank you for your words. Is there something you would like to explore further?",
				"I receive what you have shared. What else is present for you today?",
				"Your thoughts are welcome here. Where shall we let the conversation wander?",
			},
			emotion.Default: {
				"I'm listening. Tell me more whenever you're ready.",
				"Thanks for telling me. What would you like to talk about next?",
				"I hear you. Is there anything else on your mind?",
			},
		},
	}
}

// templateKey identifies one template in the bank for repetition tracking.
func templateKey(category emotion.Category, ctx emotion.Context, index int) string {
	return fmt.Sprintf("%s/%s/%d", category, ctx, index)
}
