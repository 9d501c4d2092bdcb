// Package mmap maps record files read-only into memory.
//
//	m, err := mmap.Open("homr.train.tfrecord")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	r := m.Reader()
//
// Unix platforms use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile, and Advise is a no-op there.
//
// A Mapping may be read concurrently. Close is idempotent; slices obtained
// from Bytes must not be used after it returns.
package mmap
