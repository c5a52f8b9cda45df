package emotion

import "fmt"

// Factors holds one multiplicative expressiveness factor per category for
// each cultural context. Static configuration, applied exactly once per
// message.
type Factors map[Context]map[Category]float64

// Validate rejects unknown contexts or categories and non-positive factors at
// load time.
func (f Factors) Validate() error {
	for ctx, perCategory := range f {
		if _, ok := ParseContext(string(ctx)); !ok {
			return fmt.Errorf("cultural factors reference unknown context %q", ctx)
		}
		for c, factor := range perCategory {
			if _, ok := ParseCategory(string(c)); !ok {
				return fmt.Errorf("cultural factors for %q reference unknown category %q", ctx, c)
			}
			if factor <= 0 {
				return fmt.Errorf("cultural factor for %s/%s is non-positive: %v", ctx, c, factor)
			}
		}
	}
	for _, ctx := range Contexts() {
		if _, ok := f[ctx]; !ok {
			return fmt.Errorf("cultural factors missing context %q", ctx)
		}
	}
	return nil
}

// DefaultFactors amplifies expressive categories for western contexts and
// dampens them for eastern ones; surprise and neutral pass through, and the
// default context is the identity.
func DefaultFactors() Factors {
	expressive := []Category{Joy, Sadness, Anger, Fear, Disgust}

	western := make(map[Category]float64, len(Priority))
	eastern := make(map[Category]float64, len(Priority))
	identity := make(map[Category]float64, len(Priority))
	for _, c := range Priority {
		western[c] = 1.0
		eastern[c] = 1.0
		identity[c] = 1.0
	}
	for _, c := range expressive {
		western[c] = 1.2
		eastern[c] = 0.8
	}

	return Factors{Western: western, Eastern: eastern, Default: identity}
}

// Adapter applies cultural expressiveness factors to raw score vectors.
type Adapter struct {
	factors Factors
}

// NewAdapter builds an adapter over validated factors.
func NewAdapter(factors Factors) *Adapter {
	if factors == nil {
		factors = DefaultFactors()
	}
	return &Adapter{factors: factors}
}

// Adapt returns a new vector with the context's factors applied. The input is
// never mutated, so two independent calls on the same vector yield identical
// output. Categories without an explicit factor pass through unchanged.
func (a *Adapter) Adapt(raw ScoreVector, ctx Context) ScoreVector {
	perCategory, ok := a.factors[ctx]
	if !ok {
		perCategory = a.factors[Default]
	}

	out := raw.Clone()
	for c, factor := range perCategory {
		if s, present := out[c]; present {
			out[c] = s * factor
		}
	}
	return out
}
