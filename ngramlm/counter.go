package ngramlm

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const concat string = "<concat>"

// keyOf encodes a word index sequence as a map key. The empty sequence
// encodes as "" and represents the zero length history.
func keyOf(seq []int) string {
	if len(seq) == 0 {
		return ""
	}
	parts := make([]string, len(seq))
	for i, index := range seq {
		parts[i] = strconv.Itoa(index)
	}
	return strings.Join(parts, concat)
}

// seqOf decodes a map key back into a word index sequence.
func seqOf(key string) []int {
	if key == "" {
		return []int{}
	}
	parts := strings.Split(key, concat)
	seq := make([]int, len(parts))
	for i, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil {
			errMsg := fmt.Sprintf("broken counter key (%v)", key)
			panic(errMsg)
		}
		seq[i] = index
	}
	return seq
}

// NGramCounter stores counts for variable length sequences of word indices.
type NGramCounter struct {
	counts map[string]int
}

// NewNGramCounter returns new NGramCounter instance.
func NewNGramCounter() *NGramCounter {
	counter := new(NGramCounter)
	counter.counts = make(map[string]int)
	return counter
}

func newNGramCounterFromMap(counts map[string]int) *NGramCounter {
	counter := new(NGramCounter)
	counter.counts = counts
	if counter.counts == nil {
		counter.counts = make(map[string]int)
	}
	return counter
}

// IncrCount increments the count of seq and returns the updated count.
func (counter *NGramCounter) IncrCount(seq []int) int {
	key := keyOf(seq)
	counter.counts[key]++
	return counter.counts[key]
}

// GetCount returns the stored count of seq, or 0 when seq has never been
// counted.
func (counter *NGramCounter) GetCount(seq []int) int {
	return counter.counts[keyOf(seq)]
}

// Len returns the number of stored sequences.
func (counter *NGramCounter) Len() int {
	return len(counter.counts)
}

// Merge adds every count of other into counter.
func (counter *NGramCounter) Merge(other *NGramCounter) {
	for key, count := range other.counts {
		counter.counts[key] += count
	}
}

// Write dumps every stored sequence with its count, one entry per line, with
// each index decoded back to its word through symTable. Lines are sorted so
// identical counters produce identical output.
func (counter *NGramCounter) Write(w io.Writer, symTable *SymbolTable) error {
	lines := make([]string, 0, len(counter.counts))
	for key, count := range counter.counts {
		seq := seqOf(key)
		words := make([]string, len(seq))
		for i, index := range seq {
			word, ok := symTable.Word(index)
			if !ok {
				errMsg := fmt.Sprintf("counter holds index (%v) unknown to the symbol table", index)
				panic(errMsg)
			}
			words[i] = word
		}
		line := strconv.Itoa(count)
		if len(words) > 0 {
			line = strings.Join(words, " ") + " " + line
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
