// Package score turns decoded strings and their categories into suspicion
// scores. The score combines a per-category base weight, Shannon entropy
// normalized against printable text, and a saturating length term; it is
// monotonic in each input and clamped to [0,1].
package score
