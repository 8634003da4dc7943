// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository wraps a *sql.DB and issues one scoped statement per call;
// the pool owns connection acquisition and release on every exit path.
//
// Key Implementations:
//   - [CatalogRepository] : Movie entries keyed by archive message id, plus the duplicate-title report
//   - [SeriesRepository] : Series entries stored alongside movies
//   - [CategoryRepository] : Managed, deduplicated category names
//   - [UserRepository] : Chat users with the admin flag
//
// Catalog rows are addressed by message_id (the archive channel id of the
// original upload), never by the AUTOINCREMENT surrogate key; edits and
// deletes arrive from chat flows that only know the archive id.
package repositories
