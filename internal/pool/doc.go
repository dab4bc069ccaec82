// Package pool provides reusable byte buffers and typed slices for the encoder,
// the code stream codecs and the column blob writer.
package pool
