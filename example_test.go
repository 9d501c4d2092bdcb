package homr_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/homr"
	"github.com/hupe1980/homr/blobstore"
	"github.com/hupe1980/homr/testutil"
	"github.com/hupe1980/homr/vocab"
)

func Example() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "homr-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	remote := blobstore.NewMemoryStore()
	stream := testutil.Stream(
		testutil.HOMRExample([]byte("img0"), []int64{1, 2, 3}),
		testutil.HOMRExample([]byte("img1"), nil),
	)
	if err := remote.Put(ctx, homr.Dev.FileName(), stream); err != nil {
		panic(err)
	}

	dev, err := homr.LoadSplit(ctx, homr.Dev,
		homr.WithDataDir(dir),
		homr.WithRemote(remote),
		homr.WithSplitSize(homr.Dev, 2),
	)
	if err != nil {
		panic(err)
	}

	ex, _ := dev.Get(0)
	fmt.Println(dev.Len(), string(ex.Image.Bytes()), ex.Marks)

	marks, _ := vocab.Tokens(ex.Marks)
	predictions := strings.Join(marks, " ") + "\n\n"

	score, err := homr.EvaluateFile(ctx, dev, strings.NewReader(predictions))
	if err != nil {
		panic(err)
	}
	fmt.Printf("HOMR edit distance: %.3f%%\n", score)

	// Output:
	// 2 img0 [1 2 3]
	// HOMR edit distance: 0.000%
}
