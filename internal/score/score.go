package score

import (
	"github.com/strsift/strsift/internal/types"
)

// Weights maps categories to base suspicion weights in [0,1].
type Weights map[types.Category]float64

// DefaultWeights reflects triage priority: encoded blobs and remote
// endpoints first, structural identifiers last. Callers may override any
// subset; unlisted categories fall back to the Generic weight.
func DefaultWeights() Weights {
	return Weights{
		types.CatBase64Blob:  0.75,
		types.CatHexBlob:     0.70,
		types.CatURL:         0.65,
		types.CatRegistryKey: 0.65,
		types.CatIPv4:        0.60,
		types.CatIPv6:        0.60,
		types.CatEmail:       0.55,
		types.CatDomainName:  0.55,
		types.CatWindowsPath: 0.50,
		types.CatUnixPath:    0.45,
		types.CatGUID:        0.40,
		types.CatGeneric:     0.10,
	}
}

// maxEntropyBits is the normalization ceiling for the entropy term.
// Printable ASCII tops out at log2(95) ~ 6.57; anything at or above 6 bits
// per symbol reads as fully random.
const maxEntropyBits = 6.0

// lenSaturation controls how fast the length term approaches 1.
const lenSaturation = 48.0

// Scorer computes suspicion scores using a weight table.
type Scorer struct {
	weights    Weights
	genericMin int
}

// NewScorer builds a Scorer. Overrides in w are layered over the default
// weights; genericMin is the minimum text length for an unclassified
// string to be tagged Generic (values < 1 default to 4).
func NewScorer(w Weights, genericMin int) *Scorer {
	merged := DefaultWeights()
	for cat, wt := range w {
		merged[cat] = clamp01(wt)
	}
	if genericMin < 1 {
		genericMin = 4
	}
	return &Scorer{weights: merged, genericMin: genericMin}
}

// Score attaches entropy, the final category set, and the suspicion score
// to a decoded string. Strings with no category are tagged Generic when
// long enough. Total for any non-empty text; never fails.
func (s *Scorer) Score(d types.DecodedString, cats types.CategorySet) types.ScoredString {
	if cats == nil {
		cats = types.CategorySet{}
	}
	if len(cats) == 0 && len(d.Text) >= s.genericMin {
		cats.Add(types.CatGeneric)
	}
	ent := Entropy(d.Text)
	return types.ScoredString{
		Decoded:    d,
		Categories: cats,
		Entropy:    ent,
		Score:      s.combine(cats, ent, len(d.Text)),
	}
}

// combine folds base weight, entropy, and length into [0,1]. The base is
// the maximum weight across categories; the residual headroom is filled
// proportionally by the entropy and length signals, which keeps the result
// monotonic in every input.
func (s *Scorer) combine(cats types.CategorySet, entropy float64, length int) float64 {
	base := 0.0
	for cat := range cats {
		w, ok := s.weights[cat]
		if !ok {
			w = s.weights[types.CatGeneric]
		}
		if w > base {
			base = w
		}
	}
	entNorm := entropy / maxEntropyBits
	if entNorm > 1 {
		entNorm = 1
	}
	lenNorm := float64(length) / (float64(length) + lenSaturation)
	blend := 0.65*entNorm + 0.35*lenNorm
	return clamp01(base + (1-base)*blend)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
