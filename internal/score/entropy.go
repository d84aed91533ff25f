package score

import "math"

// Entropy returns the Shannon entropy of s in bits per symbol, computed
// over the rune frequency distribution. Empty and single-symbol strings
// have entropy 0; k distinct equiprobable symbols approach log2(k).
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		h += -p * math.Log2(p)
	}
	return h
}
