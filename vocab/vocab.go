package vocab

import (
	"errors"
	"fmt"
	"sync"
)

// Pad is the id of the padding token.
const Pad int64 = 0

// ErrUnknownMark is returned when an id or token is not part of the table.
var ErrUnknownMark = errors.New("vocab: unknown mark")

var ids = sync.OnceValue(func() map[string]int64 {
	m := make(map[string]int64, len(marks))
	for i, tok := range marks {
		m[tok] = int64(i)
	}
	return m
})

// Size returns the number of marks including the padding token.
func Size() int { return len(marks) }

// Marks returns a copy of the table in id order.
func Marks() []string {
	out := make([]string, len(marks))
	copy(out, marks[:])
	return out
}

// Token returns the label of id.
func Token(id int64) (string, bool) {
	if id < 0 || id >= int64(len(marks)) {
		return "", false
	}
	return marks[id], true
}

// ID returns the id of token.
func ID(token string) (int64, bool) {
	id, ok := ids()[token]
	return id, ok
}

// Tokens maps a sequence of ids to labels.
func Tokens(seq []int64) ([]string, error) {
	out := make([]string, len(seq))
	for i, id := range seq {
		tok, ok := Token(id)
		if !ok {
			return nil, fmt.Errorf("%w: id %d at position %d", ErrUnknownMark, id, i)
		}
		out[i] = tok
	}
	return out, nil
}

// IDs maps a sequence of labels to ids.
func IDs(tokens []string) ([]int64, error) {
	out := make([]int64, len(tokens))
	for i, tok := range tokens {
		id, ok := ID(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownMark, tok, i)
		}
		out[i] = id
	}
	return out, nil
}
