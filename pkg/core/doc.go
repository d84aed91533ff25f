// Package core provides a small, stable facade over strsift's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without
// exposing internal implementation packages.
//
// Example:
//
//	rep, err := core.Scan(ctx, data, core.DefaultConfig())
//	if err != nil { /* handle */ }
//	_ = core.MarshalReport(os.Stdout, rep)
package core
