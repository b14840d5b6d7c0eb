// Package service implements the tracker's domain operations on top of the
// store: input validation, business invariants, cascading deletes and the
// derived budget queries.
//
// Expected failures (blank fields, broken invariants, uniqueness
// collisions, stale ids) are values, not errors: every operation returns an
// Outcome carrying a success flag and a human-readable message. Only
// persistence faults travel inside failure outcomes as operator-visible
// messages.
//
// Selection state (active user, selected budget/category) lives in Session,
// an explicit object threaded through callers. Its snapshots are weak
// references: services re-resolve them against the store before anything
// destructive.
package service
