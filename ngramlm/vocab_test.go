package ngramlm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSymbolTable(t *testing.T) {
	vocabFile := filepath.Join(t.TempDir(), "vocab.txt")
	// Only the first field of each line counts; duplicates keep their
	// first index and blank lines are skipped.
	content := "<s>\n</s>\n<UNK>\nthe 120\n\ncat\nthe\nsat\n"
	require.NoError(t, os.WriteFile(vocabFile, []byte(content), 0644))

	symTable, err := NewSymbolTable(vocabFile)
	require.NoError(t, err)

	assert.Equal(t, 6, symTable.Size())
	index, ok := symTable.IndexOf("the")
	require.True(t, ok)
	assert.Equal(t, 3, index)
	word, ok := symTable.Word(index)
	require.True(t, ok)
	assert.Equal(t, "the", word)

	_, ok = symTable.IndexOf("dog")
	assert.False(t, ok)
	_, ok = symTable.Word(6)
	assert.False(t, ok)
	_, ok = symTable.Word(-1)
	assert.False(t, ok)
}

func TestNewSymbolTableMissingFile(t *testing.T) {
	_, err := NewSymbolTable(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestNewLangModelMissingReservedSymbol(t *testing.T) {
	cases := []struct {
		name  string
		vocab []string
	}{
		{"no bos", []string{"</s>", "<UNK>", "the"}},
		{"no eos", []string{"<s>", "<UNK>", "the"}},
		{"no unk", []string{"<s>", "</s>", "the"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			symTable := NewSymbolTableFromWords(c.vocab)
			_, err := NewLangModel(symTable, 2, "<s>", "</s>", "<UNK>")
			assert.Error(t, err)
		})
	}
}
