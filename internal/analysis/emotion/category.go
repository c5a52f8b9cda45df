package emotion

// Category is one of the fixed emotion labels a message can carry.
type Category string

const (
	Joy      Category = "joy"
	Sadness  Category = "sadness"
	Anger    Category = "anger"
	Fear     Category = "fear"
	Surprise Category = "surprise"
	Disgust  Category = "disgust"
	Neutral  Category = "neutral"
)

// Priority is the fixed tie-break order: when two categories score exactly
// equal, the one listed earlier wins.
var Priority = []Category{Joy, Sadness, Anger, Fear, Surprise, Disgust, Neutral}

// Categories returns all categories in priority order.
func Categories() []Category {
	out := make([]Category, len(Priority))
	copy(out, Priority)
	return out
}

// ParseCategory maps a raw label to a Category.
func ParseCategory(raw string) (Category, bool) {
	switch Category(raw) {
	case Joy, Sadness, Anger, Fear, Surprise, Disgust, Neutral:
		return Category(raw), true
	default:
		return "", false
	}
}

// Context selects the cultural adaptation profile for scoring and templates.
type Context string

const (
	Western Context = "western"
	Eastern Context = "eastern"
	Default Context = "default"
)

// Contexts returns all known cultural contexts.
func Contexts() []Context {
	return []Context{Western, Eastern, Default}
}

// ParseContext maps a raw label to a Context.
func ParseContext(raw string) (Context, bool) {
	switch Context(raw) {
	case Western, Eastern, Default:
		return Context(raw), true
	default:
		return "", false
	}
}

// ScoreVector holds one non-negative raw score per category.
type ScoreVector map[Category]float64

// NewScoreVector returns a vector with every category present at zero.
func NewScoreVector() ScoreVector {
	v := make(ScoreVector, len(Priority))
	for _, c := range Priority {
		v[c] = 0
	}
	return v
}

// Sum returns the total mass of the vector.
func (v ScoreVector) Sum() float64 {
	var total float64
	for _, s := range v {
		total += s
	}
	return total
}

// IsZero reports whether no category carries any score.
func (v ScoreVector) IsZero() bool {
	for _, s := range v {
		if s > 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for c, s := range v {
		out[c] = s
	}
	return out
}

// Normalized divides every entry by the vector sum, yielding a distribution.
// A zero vector is returned unchanged.
func (v ScoreVector) Normalized() ScoreVector {
	total := v.Sum()
	if total <= 0 {
		return v.Clone()
	}
	out := make(ScoreVector, len(v))
	for c, s := range v {
		out[c] = s / total
	}
	return out
}
