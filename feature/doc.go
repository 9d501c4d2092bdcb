// Package feature decodes tf.train.Example payloads into columnar storage.
//
// A Store keeps one typed, append-only buffer per feature key plus an index
// of cumulative element counts. The index starts with a 0 sentinel and gains
// one entry per committed example, so the elements of example i are
// buffer[index[i]:index[i+1]].
//
// Keys are discovered while decoding. A key's Kind is fixed when it is first
// seen; later records carrying another kind for the same key fail with a
// *KindMismatchError. Keys missing from a record get a zero-width entry, and
// keys that first appear at record k are back-filled with k empty entries.
//
// The Decoder walks a payload with a wire.Cursor and appends into the Store.
// A record either commits completely or is rolled back:
//
//	store := feature.NewStore()
//	dec := feature.NewDecoder(store)
//	for payload := range payloads {
//		if err := dec.Decode(payload); err != nil {
//			return err
//		}
//	}
//	marks, _ := store.Feature("marks")
//	first, _ := marks.ExampleInt64s(0)
//
// A Store is written by one goroutine during loading and may be read
// concurrently afterwards.
package feature
