// Package grouping partitions SPDX license identifiers into families that
// share the text before their first hyphen ("GPL-2.0-only" and "GPL-3.0"
// both belong to "GPL").
//
// Grouping is a single pass over the identifiers. Groups keep their members
// in first-occurrence order and are returned in the order each prefix was
// first seen, so output is reproducible for a given catalog. Prefixes shared
// by fewer than two identifiers do not form a group.
package grouping
