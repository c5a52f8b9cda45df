package emotion

import "fmt"

// Entry binds a lexicon keyword (or multi-word phrase) to its salience weight.
type Entry struct {
	Keyword string
	Weight  float64
}

// Lexicon maps each category to its weighted keyword entries. Static
// configuration, read-only once validated.
type Lexicon map[Category][]Entry

// Validate enforces the lexicon invariants: every category has at least one
// keyword and every weight is positive. Called once at startup; a failure here
// is fatal, never per-message.
func (l Lexicon) Validate() error {
	for _, c := range Priority {
		entries, ok := l[c]
		if !ok || len(entries) == 0 {
			return fmt.Errorf("lexicon category %q has no keywords", c)
		}
		for _, e := range entries {
			if e.Keyword == "" {
				return fmt.Errorf("lexicon category %q contains an empty keyword", c)
			}
			if e.Weight <= 0 {
				return fmt.Errorf("lexicon keyword %q has non-positive weight %v", e.Keyword, e.Weight)
			}
		}
	}
	for c := range l {
		if _, ok := ParseCategory(string(c)); !ok {
			return fmt.Errorf("lexicon references unknown category %q", c)
		}
	}
	return nil
}

func entries(weight float64, words ...string) []Entry {
	out := make([]Entry, 0, len(words))
	for _, w := range words {
		out = append(out, Entry{Keyword: w, Weight: weight})
	}
	return out
}

// DefaultLexicon returns the built-in keyword table. Deployments can swap it
// wholesale via the lexicon YAML override.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Joy: append(entries(1.0,
			"happy", "excited", "thrilled", "delighted", "elated", "joyful",
			"cheerful", "pleased", "glad", "fantastic", "amazing", "wonderful",
			"great", "awesome", "excellent", "perfect", "love", "celebrating",
			"celebration", "success", "achievement", "won", "victory", "proud",
			"promoted", "promotion",
		), entries(1.5, "overjoyed", "ecstatic")...),
		Sadness: append(entries(1.0,
			"sad", "depressed", "down", "blue", "unhappy", "miserable",
			"heartbroken", "crying", "tears", "lonely", "empty", "disappointed",
			"grief", "sorrow", "hurt", "pain", "loss", "hopeless", "despair",
			"rejected", "abandoned", "failed",
		), entries(1.5, "devastated")...),
		Anger: append(entries(1.0,
			"angry", "furious", "mad", "rage", "irritated", "annoyed",
			"frustrated", "outraged", "livid", "enraged", "infuriated",
			"pissed", "hate", "unfair", "cheated", "scammed",
		), []Entry{{Keyword: "fed up", Weight: 1.2}}...),
		Fear: entries(1.0,
			"scared", "afraid", "frightened", "terrified", "worried",
			"anxious", "nervous", "concerned", "panic", "stress", "overwhelmed",
			"helpless", "vulnerable", "insecure", "uncertain", "apprehensive",
			"tense", "uneasy", "threatened",
		),
		Surprise: append(entries(1.0,
			"surprised", "shocked", "amazed", "astonished", "stunned",
			"unexpected", "wow", "unbelievable", "incredible", "remarkable",
			"sudden", "blindsided",
		), []Entry{{Keyword: "out of nowhere", Weight: 1.2}}...),
		Disgust: entries(1.0,
			"disgusting", "gross", "revolting", "repulsive", "sickening",
			"nauseating", "appalling", "horrible", "repugnant", "vile",
			"offensive", "distasteful", "yucky",
		),
		Neutral: entries(0.5,
			"okay", "fine", "alright", "whatever", "anyway", "noted",
		),
	}
}

// DefaultOpposites is the negation redirect table: when a keyword match is
// negated, a fraction of its weight is credited to the opposite category.
func DefaultOpposites() map[Category]Category {
	return map[Category]Category{
		Joy:      Sadness,
		Sadness:  Joy,
		Anger:    Neutral,
		Fear:     Neutral,
		Surprise: Neutral,
		Disgust:  Neutral,
		Neutral:  Neutral,
	}
}
