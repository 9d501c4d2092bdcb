package homr

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/homr/dataset"
	"github.com/hupe1980/homr/metric"
	"github.com/hupe1980/homr/vocab"
)

const evaluateChunk = 1024

var bom = []byte{0xEF, 0xBB, 0xBF}

// Evaluate scores predictions against the marks of gold and returns the mean
// normalized edit distance as a percentage. predictions[i] holds the mark
// tokens predicted for example i.
func Evaluate(ctx context.Context, gold *dataset.Dataset, predictions [][]string, optFns ...Option) (score float64, err error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	defer func() {
		o.metricsCollector.RecordEvaluate(len(predictions), time.Since(start), err)
		o.logger.LogEvaluate(ctx, len(predictions), score, err)
	}()

	if gold == nil {
		return 0, ErrNoGold
	}
	if gold.Len() != len(predictions) {
		return 0, &metric.SizeMismatchError{Predictions: len(predictions), Gold: gold.Len()}
	}

	ed := metric.NewEditDistance[string]()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(predictions); lo += evaluateChunk {
		hi := min(lo+evaluateChunk, len(predictions))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ex, err := gold.Get(i)
				if err != nil {
					return err
				}
				tokens, err := vocab.Tokens(ex.Marks)
				if err != nil {
					return fmt.Errorf("homr: gold example %d: %w", i, err)
				}
				ed.Add(predictions[i], tokens)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return ed.Percent(), nil
}

// EvaluateFile reads one prediction per line from r and scores it with
// Evaluate. Tokens are separated by whitespace and a leading UTF-8 byte
// order mark is ignored.
func EvaluateFile(ctx context.Context, gold *dataset.Dataset, r io.Reader, optFns ...Option) (float64, error) {
	predictions, err := ReadPredictions(r)
	if err != nil {
		return 0, err
	}
	return Evaluate(ctx, gold, predictions, optFns...)
}

// ReadPredictions splits r into lines of whitespace-separated tokens.
func ReadPredictions(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var predictions [][]string
	for first := true; sc.Scan(); first = false {
		line := sc.Bytes()
		if first {
			line = bytes.TrimPrefix(line, bom)
		}
		predictions = append(predictions, strings.Fields(string(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("homr: read predictions: %w", err)
	}
	return predictions, nil
}
