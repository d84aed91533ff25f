// Package engine orchestrates the scan pipeline: extraction, decoding,
// classification, scoring, and aggregation over a byte buffer, plus
// concurrent batch scanning of file trees. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
