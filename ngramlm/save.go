package ngramlm

import (
	"encoding/json"
	"fmt"
	"os"
)

type langModelJSON struct {
	N        int `json:"n"`
	BosIndex int `json:"bos_index"`
	EosIndex int `json:"eos_index"`
	UnkIndex int `json:"unk_index"`

	PredCounts        map[string]int `json:"pred_counts"`
	HistCounts        map[string]int `json:"hist_counts"`
	HistOnePlusCounts map[string]int `json:"hist_one_plus_counts"`
}

// Save writes the frozen model to saveFile as json. The symbol table is not
// part of the dump; a loaded model must be paired with the vocabulary it was
// trained with.
func (lm *LangModel) Save(saveFile string) error {
	modelJSON := &langModelJSON{
		N:                 lm.n,
		BosIndex:          lm.bosIndex,
		EosIndex:          lm.eosIndex,
		UnkIndex:          lm.unkIndex,
		PredCounts:        lm.predCounts.counts,
		HistCounts:        lm.histCounts.counts,
		HistOnePlusCounts: lm.histOnePlusCounts.counts,
	}
	modelJSONByte, err := json.MarshalIndent(modelJSON, "", " ")
	if err != nil {
		return fmt.Errorf("cannot marshal model: %w", err)
	}
	if err := os.WriteFile(saveFile, modelJSONByte, 0644); err != nil {
		return fmt.Errorf("cannot write model file (%v): %w", saveFile, err)
	}
	return nil
}

// LoadLangModel restores a model written by Save. symTable must be the same
// vocabulary the model was trained with.
func LoadLangModel(loadFile string, symTable *SymbolTable) (*LangModel, error) {
	modelJSONByte, err := os.ReadFile(loadFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read model file (%v): %w", loadFile, err)
	}
	modelJSON := &langModelJSON{}
	if err := json.Unmarshal(modelJSONByte, modelJSON); err != nil {
		return nil, fmt.Errorf("cannot parse model file (%v): %w", loadFile, err)
	}
	if modelJSON.N < 1 {
		return nil, fmt.Errorf("model file (%v) holds an invalid order (%v)", loadFile, modelJSON.N)
	}
	lm := new(LangModel)
	lm.symTable = symTable
	lm.n = modelJSON.N
	lm.bosIndex = modelJSON.BosIndex
	lm.eosIndex = modelJSON.EosIndex
	lm.unkIndex = modelJSON.UnkIndex
	lm.predCounts = newNGramCounterFromMap(modelJSON.PredCounts)
	lm.histCounts = newNGramCounterFromMap(modelJSON.HistCounts)
	lm.histOnePlusCounts = newNGramCounterFromMap(modelJSON.HistOnePlusCounts)
	return lm, nil
}
