package ngramlm

import (
	"math"
	"testing"
)

func TestPerplexityUntrainedIsVocabSize(t *testing.T) {
	lm := newTestModel(t, 2, testVocab, nil)

	// Every query on an untrained model returns the uniform floor, so the
	// perplexity equals the vocabulary size.
	dataContainer := NewDataContainerFromSents([]string{"the cat sat", "cat cat"})
	perplexity, err := CalcPerplexity(lm, dataContainer)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(perplexity-float64(lm.symTable.Size())) > 1e-9 {
		t.Error("perplexity = ", perplexity, "vocab size = ", lm.symTable.Size())
	}
}

func TestPerplexityTrainedBeatsUniform(t *testing.T) {
	vocab := []string{"<s>", "</s>", "<UNK>", "the", "cat", "sat", "on", "mat"}
	corpus := []string{"the cat sat on the mat", "the cat sat", "the mat sat"}
	lm := newTestModel(t, 2, vocab, corpus)

	perplexity, err := CalcPerplexity(lm, NewDataContainerFromSents(corpus))
	if err != nil {
		t.Fatal(err)
	}
	if !(perplexity > 0.0 && perplexity < float64(lm.symTable.Size())) {
		t.Error("perplexity = ", perplexity, "vocab size = ", lm.symTable.Size())
	}
}

func TestEvalStats(t *testing.T) {
	vocab := []string{"<s>", "</s>", "<UNK>", "the", "cat", "sat"}
	corpus := []string{"the cat sat", "the cat"}
	lm := newTestModel(t, 2, vocab, corpus)

	evalStats, err := Eval(lm, NewDataContainerFromSents(corpus))
	if err != nil {
		t.Fatal(err)
	}
	if evalStats.Sentences != 2 {
		t.Error("sentences = ", evalStats.Sentences)
	}
	// Three predictions for the first sentence plus its end marker is four,
	// two plus the end marker for the second.
	if evalStats.Words != 7 {
		t.Error("words = ", evalStats.Words)
	}
	if !(evalStats.MeanLogProb < 0.0) {
		t.Error("mean log prob = ", evalStats.MeanLogProb)
	}
	if !(evalStats.StdLogProb >= 0.0) {
		t.Error("std log prob = ", evalStats.StdLogProb)
	}
	if !(evalStats.Perplexity > 0.0) {
		t.Error("perplexity = ", evalStats.Perplexity)
	}
}

func TestEvalEmptyCorpus(t *testing.T) {
	lm := newTestModel(t, 2, testVocab, []string{"the cat sat"})
	if _, err := Eval(lm, NewDataContainerFromSents(nil)); err == nil {
		t.Error("evaluating an empty corpus did not fail")
	}
}
