// Package strsift provides the command-line interface for the strsift
// tool. It configures subcommands (scan, categories, baseline, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/strsift/strsift/cmd/strsift"
//	func main() { strsift.Execute() }
package strsift
