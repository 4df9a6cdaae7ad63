package ngramlm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// CalcPerplexity returns the corpus perplexity of dataContainer under lm.
// Sentences are padded and mapped the same way as in training; the end
// marker counts as a predicted position.
func CalcPerplexity(lm *LangModel, dataContainer *DataContainer) (float64, error) {
	evalStats, err := Eval(lm, dataContainer)
	if err != nil {
		return 0.0, err
	}
	return evalStats.Perplexity, nil
}

// EvalStats summarizes a test corpus evaluation.
type EvalStats struct {
	Perplexity  float64
	MeanLogProb float64 // mean per sentence log2 probability
	StdLogProb  float64
	Sentences   int
	Words       int // predicted positions, end markers included
}

// Eval computes corpus perplexity together with per sentence statistics.
func Eval(lm *LangModel, dataContainer *DataContainer) (EvalStats, error) {
	evalStats := EvalStats{}
	if dataContainer.Size == 0 {
		return evalStats, fmt.Errorf("cannot evaluate an empty corpus")
	}
	sentLogProbs := make([]float64, 0, dataContainer.Size)
	entropy := 0.0
	for i := 0; i < dataContainer.Size; i++ {
		seq := lm.convertWordsToIndices(dataContainer.Sents[i])
		sentLogProb := 0.0
		for t := lm.n - 1; t < len(seq); t++ {
			p, err := lm.GetProb(seq[t-(lm.n-1) : t+1])
			if err != nil {
				return EvalStats{}, err
			}
			sentLogProb += math.Log2(p)
			evalStats.Words++
		}
		sentLogProbs = append(sentLogProbs, sentLogProb)
		entropy += sentLogProb
	}
	evalStats.Sentences = dataContainer.Size
	evalStats.Perplexity = math.Exp2(-entropy / float64(evalStats.Words))
	evalStats.MeanLogProb = stat.Mean(sentLogProbs, nil)
	if len(sentLogProbs) > 1 {
		evalStats.StdLogProb = stat.StdDev(sentLogProbs, nil)
	}
	return evalStats, nil
}
