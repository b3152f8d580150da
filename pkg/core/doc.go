// Package core provides a small, stable facade over the internal scanning
// engine for external integrations such as upload pipelines or wipe
// schedulers. It re-exports a narrow API surface so callers can depend on a
// stable import path without reaching into internal packages.
//
// Example:
//
//	eng, err := core.New(core.WithWorkers(8))
//	if err != nil { /* handle */ }
//	sum, err := eng.BatchScanDirectory(ctx, "/mnt/disk", true)
//	if err != nil { /* handle */ }
//	fmt.Print(core.FormatReport(sum))
package core
