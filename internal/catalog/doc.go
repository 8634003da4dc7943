// Package catalog implements the in-memory catalog cache, the title
// search over its snapshots, and the duplicate-title report.
//
// # Cache
//
// [Cache] mirrors the movies table as an immutable [Snapshot] that is
// replaced wholesale on refresh. Staleness is checked cooperatively:
// read paths call [Cache.Ensure] before using the snapshot, and a failed
// refresh leaves the previous snapshot fully intact. [Cache.Refresh]
// serves the operator-triggered manual refresh through the same
// atomic-swap path.
//
// # Search
//
// [Search] splits the query on whitespace into lowercase terms and
// selects entries whose title contains any term (case-insensitive
// substring, OR across terms). Results preserve snapshot order; no
// ranking is applied. [FilterByCategory] selects by case-insensitive
// exact category match. Both return views over the snapshot's backing
// array: results are valid for the request that produced them and make
// no guarantee across a later refresh.
//
// # Duplicates
//
// [Detector] reads fresh from the store on every call; duplicate groups
// are never cached.
package catalog
