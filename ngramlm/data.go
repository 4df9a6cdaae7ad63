package ngramlm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DataContainer holds a tokenized corpus, one sentence per line.
type DataContainer struct {
	Sents [][]string
	Size  int
}

// NewDataContainer returns new DataContainer instance loaded from filePath.
// Each line is split on whitespace; empty lines are skipped.
func NewDataContainer(filePath string) (*DataContainer, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open corpus file (%v): %w", filePath, err)
	}
	defer f.Close()

	dataContainer := new(DataContainer)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		sent := strings.Fields(sc.Text())
		if len(sent) > 0 {
			dataContainer.Sents = append(dataContainer.Sents, sent)
			dataContainer.Size++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read error in corpus file (%v): line %v: %w", filePath, dataContainer.Size, err)
	}
	return dataContainer, nil
}

// NewDataContainerFromSents returns new DataContainer instance built from
// already loaded sentence strings.
func NewDataContainerFromSents(sents []string) *DataContainer {
	dataContainer := new(DataContainer)
	for _, sentStr := range sents {
		sent := strings.Fields(sentStr)
		if len(sent) > 0 {
			dataContainer.Sents = append(dataContainer.Sents, sent)
			dataContainer.Size++
		}
	}
	return dataContainer
}
