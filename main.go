package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/tomoris/wblm/ngramlm"
)

func main() {
	var (
		flagConfig    = flag.String("config", "", "yaml config file path")
		flagVocab     = flag.String("vocab", "", "vocabulary file path")
		flagTrain     = flag.String("train", "", "training corpus path, one sentence per line")
		flagTest      = flag.String("test", "", "test corpus path for perplexity evaluation")
		flagBos       = flag.String("bos", "", "begin of sentence symbol")
		flagEos       = flag.String("eos", "", "end of sentence symbol")
		flagUnk       = flag.String("unk", "", "unknown word symbol")
		flagN         = flag.Int("n", 0, "n-gram order")
		flagCountFile = flag.String("countFile", "", "write the counters to this file after training")
		flagModelFile = flag.String("modelFile", "", "save the trained model to this file as json")
		flagThreads   = flag.Int("threads", 0, "number of training threads")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := ngramlm.DefaultConfig()
	if *flagConfig != "" {
		cfg, err = ngramlm.LoadConfig(*flagConfig)
		if err != nil {
			logger.Fatal("loading config failed", zap.Error(err))
		}
	}
	// Flags override the config file.
	if *flagVocab != "" {
		cfg.Vocab = *flagVocab
	}
	if *flagTrain != "" {
		cfg.Train = *flagTrain
	}
	if *flagTest != "" {
		cfg.Test = *flagTest
	}
	if *flagBos != "" {
		cfg.BOS = *flagBos
	}
	if *flagEos != "" {
		cfg.EOS = *flagEos
	}
	if *flagUnk != "" {
		cfg.Unk = *flagUnk
	}
	if *flagN != 0 {
		cfg.N = *flagN
	}
	if *flagThreads != 0 {
		cfg.Threads = *flagThreads
	}
	if *flagCountFile != "" {
		cfg.CountFile = *flagCountFile
	}
	if *flagModelFile != "" {
		cfg.ModelFile = *flagModelFile
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	symTable, err := ngramlm.NewSymbolTable(cfg.Vocab)
	if err != nil {
		logger.Fatal("loading vocabulary failed", zap.Error(err))
	}
	lm, err := ngramlm.NewLangModel(symTable, cfg.N, cfg.BOS, cfg.EOS, cfg.Unk)
	if err != nil {
		logger.Fatal("building model failed", zap.Error(err))
	}

	logger.Info("training",
		zap.String("train", cfg.Train),
		zap.Int("n", cfg.N),
		zap.Int("vocab_size", symTable.Size()),
		zap.Int("threads", cfg.Threads))
	if cfg.Threads > 1 {
		dataContainer, err := ngramlm.NewDataContainer(cfg.Train)
		if err != nil {
			logger.Fatal("loading training corpus failed", zap.Error(err))
		}
		lm.TrainParallel(dataContainer, cfg.Threads)
	} else {
		if err := lm.TrainFile(cfg.Train); err != nil {
			logger.Fatal("training failed", zap.Error(err))
		}
	}

	if cfg.CountFile != "" {
		if err := lm.WriteCountFile(cfg.CountFile); err != nil {
			logger.Fatal("writing counts failed", zap.Error(err))
		}
		logger.Info("wrote counts", zap.String("count_file", cfg.CountFile))
	}
	if cfg.ModelFile != "" {
		if err := lm.Save(cfg.ModelFile); err != nil {
			logger.Fatal("saving model failed", zap.Error(err))
		}
		logger.Info("saved model", zap.String("model_file", cfg.ModelFile))
	}
	if cfg.Test != "" {
		dataContainer, err := ngramlm.NewDataContainer(cfg.Test)
		if err != nil {
			logger.Fatal("loading test corpus failed", zap.Error(err))
		}
		evalStats, err := ngramlm.Eval(lm, dataContainer)
		if err != nil {
			logger.Fatal("evaluation failed", zap.Error(err))
		}
		logger.Info("evaluated",
			zap.String("test", cfg.Test),
			zap.Float64("perplexity", evalStats.Perplexity),
			zap.Float64("mean_sent_log_prob", evalStats.MeanLogProb),
			zap.Int("sentences", evalStats.Sentences),
			zap.Int("words", evalStats.Words))
	}
}
