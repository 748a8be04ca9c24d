// Package general is the catalog of canonical validation errors. The same kind
// of failure always carries the same code and wording, wherever it is raised.
//
// Every constructor that takes a field name panics with an error wrapping
// rop.ErrInvalidArgument when the name is blank: an unnamed field is a bug in
// the caller, not a domain failure.
package general
