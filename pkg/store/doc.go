// Package store persists generated plans by id.
//
// Three backends implement [Store]:
//
//   - [MemoryStore]: process-local map, used by tests and `plansmith serve`
//     when no database is configured
//   - [SQLiteStore]: a single-file database for the CLI history
//   - [MongoStore]: a shared collection for multi-instance deployments
//
// [Open] picks a backend from a location string.
//
// # Errors
//
// Missing plans return an error coded PLAN_NOT_FOUND; backend failures are
// coded STORAGE_ERROR. Use [errors.IsNotFound] to tell them apart.
//
// [errors.IsNotFound]: github.com/matzehuels/plansmith/pkg/errors.IsNotFound
package store
