package ngramlm

import (
	"errors"
	"fmt"
)

// ErrInvalidNgram reports a probability query whose length is outside 1 .. n.
var ErrInvalidNgram = errors.New("invalid n-gram length")

// GetProb returns the Witten-Bell smoothed probability of the last index of
// ngram given the preceding indices (oldest first). The result is always in
// (0, 1]. Read-only; safe for concurrent callers once training is done.
func (lm *LangModel) GetProb(ngram []int) (float64, error) {
	if len(ngram) < 1 || len(ngram) > lm.n {
		return 0.0, fmt.Errorf("%w: got length %v with n = %v", ErrInvalidNgram, len(ngram), lm.n)
	}
	p, _ := lm.calcProb(ngram)
	return p, nil
}

// calcProb folds the interpolation from the empty history up to the full
// history, carrying the shorter context estimate forward:
//
//	p(w | h) = lambda(h) * pML(w | h) + (1 - lambda(h)) * p(w | h')
//
// with lambda(h) = C(h) / (C(h) + N1+(h)), starting from the uniform floor
// 1/V. An unseen history has lambda 0, so the step degenerates to pure
// backoff and no division ever sees a zero denominator. probs[i] holds the
// estimate using only the last i context words.
func (lm *LangModel) calcProb(ngram []int) (float64, []float64) {
	p := 1.0 / float64(lm.symTable.Size())
	probs := make([]float64, len(ngram))
	for i := 0; i < len(ngram); i++ {
		hist := ngram[len(ngram)-1-i : len(ngram)-1]
		pred := ngram[len(ngram)-1-i:]
		histCount := lm.histCounts.GetCount(hist)
		if histCount > 0 {
			onePlusCount := lm.histOnePlusCounts.GetCount(hist)
			lambda := float64(histCount) / float64(histCount+onePlusCount)
			body := float64(lm.predCounts.GetCount(pred)) / float64(histCount)
			p = lambda*body + (1.0-lambda)*p
		}
		probs[i] = p
	}
	return p, probs
}
