// Package spdx fetches the SPDX license catalog.
//
// The catalog is a JSON document whose "licenses" array lists every license
// identifier with its display name. FetchRegistry downloads it once and
// returns an immutable Registry that callers pass explicitly to whatever
// needs it; nothing in this package holds global state.
package spdx
