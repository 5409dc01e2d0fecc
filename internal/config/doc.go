// Package config loads, normalizes, and validates spdxdiff configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SPDXDIFF_CACHE_DIR. A missing configuration file is not an error: the
// defaults point at the public SPDX license-list-data repository and cache
// texts under ./licenses_texts.
package config
