// Package encoder builds a dictionary-encoded column from a raw text column.
//
// Encoding runs in two phases:
//
//  1. Shard phase: the raw column is split into contiguous shards, one per
//     worker goroutine. Each worker assigns local codes in local first-seen
//     order and writes them into its own region of the final code slice.
//  2. Merge phase: after every worker has returned, a single goroutine walks
//     the shards in order, adds each local key to the global dictionary and
//     rewrites the shard's region through a local-to-global translation table.
//
// Because shards are merged in row order, global codes follow global
// first-seen order and the result is identical for every shard count:
//
//	session, err := encoder.Encode([]string{"cat", "dog", "cat", "car", "dog"}, 2)
//	// session.Dictionary(): cat=0, dog=1, car=2
//	// session.Column():     [0 1 0 2 1]
package encoder
