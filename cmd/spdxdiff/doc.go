// Package main hosts the spdxdiff CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the SPDX
// catalog client and the license text cache, and hands them to the report
// driver. Running spdxdiff with no subcommand prints the full report; the
// other commands inspect groups, compare arbitrary licenses, and manage the
// local text cache.
//
// Keep this package lean: behaviour lives in the internal packages and is
// only surfaced here through commands and flags.
package main
