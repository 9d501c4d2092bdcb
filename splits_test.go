package homr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplits(t *testing.T) {
	tests := []struct {
		split Split
		name  string
		file  string
		size  int
	}{
		{Train, "train", "homr.train.tfrecord", 51365},
		{Dev, "dev", "homr.dev.tfrecord", 5027},
		{Test, "test", "homr.test.tfrecord", 5023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.split.String())
			assert.Equal(t, tt.file, tt.split.FileName())
			assert.Equal(t, tt.size, tt.split.Size())

			got, err := ParseSplit(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.split, got)
		})
	}
}

func TestParseSplit(t *testing.T) {
	s, err := ParseSplit("DEV")
	require.NoError(t, err)
	assert.Equal(t, Dev, s)

	_, err = ParseSplit("validation")
	assert.ErrorIs(t, err, ErrUnknownSplit)

	assert.Equal(t, "Split(7)", Split(7).String())
	assert.Zero(t, Split(-1).Size())
}
