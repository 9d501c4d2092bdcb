// Package homr loads the HOMR handwritten optical music recognition corpus
// and evaluates predicted mark sequences against it.
//
// The corpus consists of three TFRecord files (train, dev, test) whose
// records are tf.train.Example messages with two features: "image" holding
// an encoded image and "marks" holding a sequence of mark ids. Loading
// decodes each file into a columnar feature store and exposes it as a
// randomly indexable dataset.
//
// # Quick Start
//
//	ctx := context.Background()
//	corpus, _ := homr.Load(ctx, homr.WithDataDir("./data"))
//	dev := corpus.Split(homr.Dev)
//	ex, _ := dev.Get(0)
//	fmt.Println(len(ex.Image.Bytes()), ex.Marks)
//
// Missing files are downloaded from the public corpus URL the first time.
// Any blobstore.Store can serve as the remote:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("homr/"))
//	corpus, _ := homr.Load(ctx, homr.WithRemote(s3Store))
//
// # Evaluation
//
// Predictions are scored with the mean normalized edit distance:
//
//	f, _ := os.Open("predictions.txt")
//	score, _ := homr.EvaluateFile(dev, f)
//	fmt.Printf("HOMR edit distance: %.3f%%\n", score)
//
// Each prediction line holds the whitespace-separated marks of one example,
// in dataset order.
package homr
