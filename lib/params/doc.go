// Package params loads, queries, mutates, and saves hierarchical key/value
// parameters stored in a sectioned plain-text format.
//
// # File format
//
// A parameter file is a sequence of lines:
//
//	[time]
//	dt = 0.1      # timestep
//	steps = 1000
//
//	[output]
//	path = /tmp/run1
//
// Everything from the first '#' to the end of a line is a comment. A line
// whose trimmed form starts with '[' and ends with ']' opens a section; every
// other non-blank line must be a "key = value" assignment, split at the first
// '='. Keys and values are trimmed of ASCII spaces only — tabs are preserved,
// which is a deliberate property of the format, not an oversight.
//
// Entries are addressed by a composite key "section/key". Assignments that
// appear before any section header belong to the empty-string section and are
// addressed as "/key". Neither section names nor keys may contain '/';
// behavior for such names is unspecified.
//
// # Ordering
//
// The store has no memory of load order. Iteration, Print, and Save all walk
// entries in ascending lexicographic order of the composite key, which is
// what groups a section's keys together in saved output.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Callers sharing one Store across
// goroutines must provide their own synchronization.
package params
