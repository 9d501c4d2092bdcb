package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	assert.Equal(t, 938, Size())

	tok, ok := Token(Pad)
	require.True(t, ok)
	assert.Equal(t, "<pad>", tok)

	tok, ok = Token(int64(Size() - 1))
	require.True(t, ok)
	assert.Equal(t, "timeSignature-C/", tok)

	_, ok = Token(-1)
	assert.False(t, ok)
	_, ok = Token(int64(Size()))
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	for i, tok := range Marks() {
		id, ok := ID(tok)
		require.True(t, ok, tok)
		assert.Equal(t, int64(i), id)
	}
}

func TestMarksReturnsCopy(t *testing.T) {
	m := Marks()
	m[0] = "mutated"

	tok, _ := Token(0)
	assert.Equal(t, "<pad>", tok)
}

func TestTokensAndIDs(t *testing.T) {
	toks, err := Tokens([]int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"barline", "clef-C1"}, toks)

	ids, err := IDs(toks)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	_, err = Tokens([]int64{1, 100000})
	assert.ErrorIs(t, err, ErrUnknownMark)

	_, err = IDs([]string{"note-Z9_eighth"})
	assert.ErrorIs(t, err, ErrUnknownMark)
}
