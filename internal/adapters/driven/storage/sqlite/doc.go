// Package sqlite provides the SQLite-backed implementation of the
// StateStore port: the always-on local cache of the CRM state.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The full state is serialised to JSON and stored as a single row in
// kv_state under a fixed key. The schema is managed through versioned
// migrations embedded from the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.nexus/data/nexus.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
