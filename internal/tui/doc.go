// Package tui drives the interactive terminal surface: a bubbletea program
// whose navigation is an explicit stack of frames.
//
// A frame is one screen the user can act on: a menu, an id-tagged selection
// list, a form of free-text fields, a confirmation, or a notice. Descending
// into a sub-menu pushes exactly one frame; "back" (esc) pops exactly one
// and never re-executes the action that opened the frame below. Multi-stage
// flows (add expense, view expenses with sorting and filtering) record the
// stack depth they started at and unwind back to it when they finish or
// abort, so navigation depth stays bounded without recursion.
//
// The program blocks only on the next key press; there are no timers and no
// background work. Exit is offered on the top-level menu alone.
package tui
