package ngramlm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
)

// LangModel is an n-gram language model with Witten-Bell smoothing. The
// three counters are mutated only while training; once training finishes the
// model is frozen and probability queries are safe for concurrent callers.
type LangModel struct {
	symTable *SymbolTable
	n        int
	bosIndex int
	eosIndex int
	unkIndex int

	// predCounts holds counts of (history, predicted word) tuples,
	// histCounts how often each history was followed by any word, and
	// histOnePlusCounts how many distinct words followed each history.
	predCounts        *NGramCounter
	histCounts        *NGramCounter
	histOnePlusCounts *NGramCounter
}

// NewLangModel returns new LangModel instance with empty counters. It fails
// when n < 1 or when the begin/end/unknown symbol is missing from symTable.
func NewLangModel(symTable *SymbolTable, n int, bos string, eos string, unk string) (*LangModel, error) {
	if n < 1 {
		return nil, fmt.Errorf("n-gram order must be >= 1, got %v", n)
	}
	lm := new(LangModel)
	lm.symTable = symTable
	lm.n = n
	var ok bool
	if lm.bosIndex, ok = symTable.IndexOf(bos); !ok {
		return nil, fmt.Errorf("vocabulary is missing the begin of sentence symbol (%v)", bos)
	}
	if lm.eosIndex, ok = symTable.IndexOf(eos); !ok {
		return nil, fmt.Errorf("vocabulary is missing the end of sentence symbol (%v)", eos)
	}
	if lm.unkIndex, ok = symTable.IndexOf(unk); !ok {
		return nil, fmt.Errorf("vocabulary is missing the unknown word symbol (%v)", unk)
	}
	lm.predCounts = NewNGramCounter()
	lm.histCounts = NewNGramCounter()
	lm.histOnePlusCounts = NewNGramCounter()
	return lm, nil
}

// N returns the model order.
func (lm *LangModel) N() int {
	return lm.n
}

// BosIndex returns the begin of sentence index.
func (lm *LangModel) BosIndex() int {
	return lm.bosIndex
}

// EosIndex returns the end of sentence index.
func (lm *LangModel) EosIndex() int {
	return lm.eosIndex
}

// UnkIndex returns the unknown word index. Callers map out of vocabulary
// words to this index before querying.
func (lm *LangModel) UnkIndex() int {
	return lm.unkIndex
}

// convertWordsToIndices prepends n-1 begin markers, appends one end marker
// and maps out of vocabulary words to the unknown index.
func (lm *LangModel) convertWordsToIndices(words []string) []int {
	seq := make([]int, 0, len(words)+lm.n)
	for i := 0; i < lm.n-1; i++ {
		seq = append(seq, lm.bosIndex)
	}
	for _, word := range words {
		index, ok := lm.symTable.IndexOf(word)
		if !ok {
			index = lm.unkIndex
		}
		seq = append(seq, index)
	}
	seq = append(seq, lm.eosIndex)
	return seq
}

// countSentenceNgrams folds one padded sentence into the given counters.
// Every position past the leading begin markers is a prediction target; for
// each target the histories of length 0 .. n-1 ending just before it are
// counted. histOnePlusCounts is bumped only the first time a (history, word)
// pair is seen, so it counts distinct continuations.
func countSentenceNgrams(wordList []int, n int, predCounts *NGramCounter, histCounts *NGramCounter, histOnePlusCounts *NGramCounter) {
	for t := n - 1; t < len(wordList); t++ {
		for k := 0; k <= n-1; k++ {
			if t-k < 0 {
				break
			}
			hist := wordList[t-k : t]
			pred := wordList[t-k : t+1]
			countBefore := predCounts.GetCount(pred)
			predCounts.IncrCount(pred)
			histCounts.IncrCount(hist)
			if countBefore == 0 {
				histOnePlusCounts.IncrCount(hist)
			}
		}
	}
}

func (lm *LangModel) countSentence(wordList []int) {
	countSentenceNgrams(wordList, lm.n, lm.predCounts, lm.histCounts, lm.histOnePlusCounts)
}

// Train folds every sentence of the container into the counters.
func (lm *LangModel) Train(dataContainer *DataContainer) {
	for i := 0; i < dataContainer.Size; i++ {
		lm.countSentence(lm.convertWordsToIndices(dataContainer.Sents[i]))
	}
}

// TrainFile streams the training corpus one sentence at a time, so memory
// stays bounded by the longest sentence rather than the corpus.
func (lm *LangModel) TrainFile(filePath string) error {
	total, err := countLines(filePath)
	if err != nil {
		return err
	}
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("cannot open training file (%v): %w", filePath, err)
	}
	defer f.Close()

	bar := pb.StartNew(total)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		bar.Add(1)
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		lm.countSentence(lm.convertWordsToIndices(words))
	}
	bar.Finish()
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read error in training file (%v): %w", filePath, err)
	}
	return nil
}

// TrainParallel splits the container across threadsNum workers, each folding
// its share into private counters, and merges the partial counters by
// point-wise addition. The per sentence update is a commutative sum, so the
// result is identical to a sequential pass.
func (lm *LangModel) TrainParallel(dataContainer *DataContainer, threadsNum int) {
	if threadsNum <= 0 {
		panic("threadsNum <= 0")
	}
	type partialCounts struct {
		predCounts        *NGramCounter
		histCounts        *NGramCounter
		histOnePlusCounts *NGramCounter
	}
	partials := make([]*partialCounts, threadsNum)
	batch := (dataContainer.Size + threadsNum - 1) / threadsNum
	wg := sync.WaitGroup{}
	for w := 0; w < threadsNum; w++ {
		wg.Add(1)
		go func(w int) {
			part := &partialCounts{
				predCounts:        NewNGramCounter(),
				histCounts:        NewNGramCounter(),
				histOnePlusCounts: NewNGramCounter(),
			}
			for i := w * batch; i < (w+1)*batch && i < dataContainer.Size; i++ {
				seq := lm.convertWordsToIndices(dataContainer.Sents[i])
				countSentenceNgrams(seq, lm.n, part.predCounts, part.histCounts, part.histOnePlusCounts)
			}
			partials[w] = part
			wg.Done()
		}(w)
	}
	wg.Wait()
	for _, part := range partials {
		lm.predCounts.Merge(part.predCounts)
		lm.histCounts.Merge(part.histCounts)
		lm.histOnePlusCounts.Merge(part.histOnePlusCounts)
	}
}

// WriteCounts dumps the three counters with their section headers.
func (lm *LangModel) WriteCounts(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "# Pred counts."); err != nil {
		return err
	}
	if err := lm.predCounts.Write(w, lm.symTable); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# Hist counts."); err != nil {
		return err
	}
	if err := lm.histCounts.Write(w, lm.symTable); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# Hist 1+ counts."); err != nil {
		return err
	}
	return lm.histOnePlusCounts.Write(w, lm.symTable)
}

// WriteCountFile writes the counters to fileName.
func (lm *LangModel) WriteCountFile(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("cannot create count file (%v): %w", fileName, err)
	}
	if err := lm.WriteCounts(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func countLines(filePath string) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("cannot open training file (%v): %w", filePath, err)
	}
	defer f.Close()

	total := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		total++
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read error in training file (%v): %w", filePath, err)
	}
	return total, nil
}
