// Package store provides the single in-memory document backing the tracker
// and its JSON persistence.
//
// The store exclusively owns the four entity collections (users, budgets,
// categories, expenses). Callers receive copies or short-lived pointers and
// never hold authoritative state of their own.
//
// # Persistence model
//
// Every mutating call triggers a full-document write-through: the document
// is serialized and the data file replaced wholesale. Writes are atomic
// (temp file in the same directory, then rename) so a crash mid-write never
// leaves a corrupt file behind; at worst the last mutation is lost on disk
// while remaining applied in memory for the rest of the run.
//
// # Referential integrity
//
// RemoveCategory refuses to remove a category that any expense still
// references (dependency guard). Cascading removal of a user's budgets and
// expenses is deliberately the domain layer's job, issued as an explicit
// multi-step sequence; the store only offers the primitive removals.
//
// On load, each expense's resolved category reference is rebuilt by joining
// CategoryId against the loaded categories. A dangling reference fails the
// load with an IntegrityError rather than silently dropping data.
package store
