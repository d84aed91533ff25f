// Package aggregate folds scored strings into per-text summary entries and
// produces the final ordered scan report. Merging is by exact text, case
// sensitive and encoding agnostic: the same text recovered from ASCII and
// UTF-16 sources lands in one entry.
package aggregate
