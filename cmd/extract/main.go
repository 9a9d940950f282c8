package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"questscribe/internal/config"
	"questscribe/internal/pipeline"
	"questscribe/internal/util"
	"questscribe/pkg/corpus"
	"questscribe/pkg/extract"
	ioloader "questscribe/pkg/loader/io"
	"questscribe/pkg/logger"
)

func main() {
	util.LoadEnv()

	configPath := flag.String("config", "", "path to YAML config file")
	dataDir := flag.String("data-dir", "", "path to extracted corpus tables")
	repoDir := flag.String("repo-dir", "", "path to the data repository (nested-structure artifacts)")
	outputDir := flag.String("output-dir", "", "output directory")
	lang := flag.String("lang", "", "text table language variant, e.g. CHS/CHT/EN")
	questType := flag.String("quest-type", "", "chapter quest-type tag to extract")
	chapters := flag.String("chapters", "", "comma-separated chapter IDs to extract")
	mergeAll := flag.Bool("merge-all", true, "write the combined all-chapters transcript")
	noTextOutput := flag.Bool("no-text-output", false, "skip writing transcript files")
	validationOnly := flag.Bool("validation-only", false, "only generate coverage/sample outputs")
	sampleCount := flag.Int("sample-count", -1, "number of validation samples to retain")
	seed := flag.Int64("seed", 0, "random seed for validation sampling (0 = time-based)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)

	// Flags override the file and environment only when explicitly set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.DataDir = *dataDir
		case "repo-dir":
			cfg.RepoDir = *repoDir
		case "output-dir":
			cfg.OutputDir = *outputDir
		case "lang":
			cfg.Lang = *lang
		case "quest-type":
			cfg.QuestType = *questType
		case "chapters":
			if parsed, parseErr := config.ParseChapterList(*chapters); parseErr == nil {
				cfg.Chapters = parsed
			} else if err == nil {
				err = parseErr
			}
		case "merge-all":
			cfg.MergeAll = *mergeAll
		case "no-text-output":
			cfg.WriteText = !*noTextOutput
		case "validation-only":
			cfg.ValidationOnly = *validationOnly
		case "sample-count":
			cfg.SampleCount = *sampleCount
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		}
	})

	logger.Init(logger.Options{Debug: cfg.Debug})

	if err != nil {
		logger.Fatal("Could not load configuration", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fileLoader := ioloader.NewIOFileLoader()

	corp := corpus.Load(ctx, corpus.LoadParams{
		DataDir: cfg.DataDir,
		Lang:    cfg.Lang,
		Loader:  fileLoader,
	})

	extractor := extract.NewExtractor(extract.NewExtractorParams{
		Corpus:   corp,
		Loader:   fileLoader,
		CodexDir: filepath.Join(cfg.RepoDir, "BinOutput", "CodexQuest"),
	})

	p := pipeline.New(pipeline.NewPipelineParams{
		Config:    cfg,
		Corpus:    corp,
		Extractor: extractor,
	})

	if err := p.Run(ctx); err != nil {
		logger.Fatal("Extraction failed", "err", err)
	}
}
