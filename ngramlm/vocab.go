package ngramlm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// SymbolTable maps words to integer indices and back. Indices are assigned
// in insertion order starting from 0.
type SymbolTable struct {
	wordToIndex map[string]int
	indexToWord []string
}

// NewSymbolTable returns new SymbolTable instance loaded from filePath.
// The first whitespace separated field of each non-empty line is taken as a
// word; duplicated words keep their first index.
func NewSymbolTable(filePath string) (*SymbolTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open vocabulary file (%v): %w", filePath, err)
	}
	defer f.Close()

	symTable := newEmptySymbolTable()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		symTable.add(fields[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read error in vocabulary file (%v): %w", filePath, err)
	}
	return symTable, nil
}

// NewSymbolTableFromWords returns new SymbolTable instance built from words.
func NewSymbolTableFromWords(words []string) *SymbolTable {
	symTable := newEmptySymbolTable()
	for _, word := range words {
		symTable.add(word)
	}
	return symTable
}

func newEmptySymbolTable() *SymbolTable {
	symTable := new(SymbolTable)
	symTable.wordToIndex = make(map[string]int)
	symTable.indexToWord = make([]string, 0)
	return symTable
}

func (symTable *SymbolTable) add(word string) int {
	if index, ok := symTable.wordToIndex[word]; ok {
		return index
	}
	index := len(symTable.indexToWord)
	symTable.wordToIndex[word] = index
	symTable.indexToWord = append(symTable.indexToWord, word)
	return index
}

// IndexOf returns the index of word.
func (symTable *SymbolTable) IndexOf(word string) (int, bool) {
	index, ok := symTable.wordToIndex[word]
	return index, ok
}

// Word returns the word stored at index.
func (symTable *SymbolTable) Word(index int) (string, bool) {
	if index < 0 || index >= len(symTable.indexToWord) {
		return "", false
	}
	return symTable.indexToWord[index], true
}

// Size returns the number of distinct words in the table.
func (symTable *SymbolTable) Size() int {
	return len(symTable.indexToWord)
}
