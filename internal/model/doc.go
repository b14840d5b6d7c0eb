// Package model defines the tracker's persisted entities and the scalar
// types they are built from.
//
// JSON tags preserve the field names of the pre-existing data file
// (PascalCase: Id, Username, UserId, StartDate, ...) so that documents
// written by earlier versions of the tracker load unchanged.
//
// Two scalar wrappers pin the wire format:
//   - Date marshals as a zone-less ISO timestamp (2006-01-02T15:04:05)
//     and parses user input in the fixed dd-mm-yyyy layout.
//   - Amount wraps a decimal and marshals as a bare JSON number.
package model
