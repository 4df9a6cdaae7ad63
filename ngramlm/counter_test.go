package ngramlm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNGramCounterIncrAndGet(t *testing.T) {
	counter := NewNGramCounter()

	assert.Equal(t, 0, counter.GetCount([]int{3, 7}))
	assert.Equal(t, 1, counter.IncrCount([]int{3, 7}))
	assert.Equal(t, 2, counter.IncrCount([]int{3, 7}))
	assert.Equal(t, 2, counter.GetCount([]int{3, 7}))

	// Keys are order and length sensitive.
	assert.Equal(t, 0, counter.GetCount([]int{7, 3}))
	assert.Equal(t, 0, counter.GetCount([]int{3}))

	// The empty sequence is its own key.
	assert.Equal(t, 0, counter.GetCount([]int{}))
	assert.Equal(t, 1, counter.IncrCount([]int{}))
	assert.Equal(t, 1, counter.GetCount([]int{}))

	assert.Equal(t, 2, counter.Len())
}

func TestNGramCounterMerge(t *testing.T) {
	a := NewNGramCounter()
	a.IncrCount([]int{1})
	a.IncrCount([]int{1, 2})

	b := NewNGramCounter()
	b.IncrCount([]int{1})
	b.IncrCount([]int{1})
	b.IncrCount([]int{2})

	a.Merge(b)
	assert.Equal(t, 3, a.GetCount([]int{1}))
	assert.Equal(t, 1, a.GetCount([]int{1, 2}))
	assert.Equal(t, 1, a.GetCount([]int{2}))
	// b is left untouched.
	assert.Equal(t, 2, b.GetCount([]int{1}))
}

func TestNGramCounterWrite(t *testing.T) {
	symTable := NewSymbolTableFromWords([]string{"a", "b"})
	counter := NewNGramCounter()
	counter.IncrCount([]int{0})
	counter.IncrCount([]int{0})
	counter.IncrCount([]int{1})
	counter.IncrCount([]int{0, 1})
	counter.IncrCount([]int{})
	counter.IncrCount([]int{})
	counter.IncrCount([]int{})

	buf := &bytes.Buffer{}
	require.NoError(t, counter.Write(buf, symTable))
	assert.Equal(t, "3\na 2\na b 1\nb 1\n", buf.String())
}

func TestKeyRoundTrip(t *testing.T) {
	for _, seq := range [][]int{{}, {0}, {12, 7, 12}} {
		assert.Equal(t, seq, seqOf(keyOf(seq)))
	}
}
