// Package textcache provides a read-through, on-disk cache of SPDX license
// texts.
//
// # Storage
//
// Each license body lives in <dir>/<licenseId>.txt as plain UTF-8 with
// surrounding whitespace trimmed. Files are written atomically (temp file +
// rename) and only after a successful HTTP 200 response, so a failed fetch
// never leaves a cache entry behind.
//
// # Failure model
//
// Get never returns an error. Any fetch failure degrades to an empty text,
// logged at debug level only. There is a single attempt per call: no retry,
// no backoff.
//
// # Locking
//
// Lock takes an advisory file lock in the cache directory so concurrent
// spdxdiff processes do not write the same cache at once.
package textcache
