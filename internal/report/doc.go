// Package report drives a full spdxdiff run: it groups the registry's
// identifiers by prefix, compares each group's texts, and writes a
// human-readable report.
//
// The registry is passed in by the caller; the driver never fetches the
// catalog itself. Output is plain text, one block per group, in catalog
// order. Group headers are colored only when the destination is a terminal.
package report
