// Package testutil provides fixtures for tests and benchmarks.
//
// It builds tf.train.Example payloads, frames them as records with valid
// masked checksums, and generates seeded synthetic corpora.
//
// # Payloads
//
//	payload := testutil.NewExample().
//		Bytes("image", png).
//		Int64s("marks", 3, 1, 4).
//		Build()
//
// # Record streams
//
//	stream := testutil.Stream(payload1, payload2)
//
// # Synthetic corpora
//
//	rng := testutil.NewRNG(4711)
//	corpus := rng.Corpus(64, 16, 32)
package testutil
