// Package column defines the in-memory data model of a dictionary-encoded text column.
//
// A column is represented by two immutable structures:
//
//   - Dictionary: the distinct values of the column, each mapped to a dense
//     uint32 code assigned in global first-seen order (0, 1, 2, ...).
//   - Encoded: one code per row, in the row order of the raw column.
//
// Row i of the raw column is recovered as dict.Key(codes[i]).
//
// Dictionaries are built once through a DictionaryBuilder, which is safe for
// concurrent use while building, and frozen into a read-only Dictionary that
// may be shared by any number of goroutines without locking.
package column
