// Package store persists a sprint plan in SQLite so repeated CLI queries
// read one imported snapshot instead of re-parsing YAML each time.
//
// The store holds inputs only: the project window, roster, tasks, and
// holiday dates. Derived values (time state, capacity, bars) are never
// written anywhere; they are recomputed by the engine on every query, so
// there is nothing to go stale.
//
// One database holds one plan. Importing replaces the previous snapshot
// wholesale inside a single transaction.
package store
