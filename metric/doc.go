// Package metric scores predicted label sequences against gold sequences.
//
// EditDistance accumulates the Levenshtein distance of each prediction to
// its gold sequence, normalized by the gold length, and reports the mean:
//
//	ed := metric.NewEditDistance[int64](metric.WithIgnore[int64](0))
//	if err := ed.Update(preds, golds); err != nil {
//		return err
//	}
//	fmt.Printf("%.3f%%\n", ed.Percent())
package metric
