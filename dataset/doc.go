// Package dataset exposes a decoded record corpus as a randomly indexable
// collection of examples.
//
// Each example carries a range into the shared image buffer and the list of
// mark ids. Image bytes are never copied per example; decoding pixels is left
// to the caller.
//
// Two strategies back a Dataset and are chosen once at construction:
//
//   - eager: every Example is materialized up front (in parallel), so Get is
//     a slice lookup.
//   - on-demand: ranges are recomputed from the feature index on each Get.
//
// Both return identical examples.
//
//	ds, err := dataset.Open(ctx, "homr.dev.tfrecord", 5027)
//	if err != nil {
//		return err
//	}
//	ex, err := ds.Get(0)
//	png := ex.Image.Bytes()
//
// Map, Filter, Select and All compose over any Indexed collection, including
// a Dataset.
package dataset
