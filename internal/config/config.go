package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"questscribe/internal/util"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of an extraction run. Values are
// resolved in order: built-in defaults, then an optional YAML config file,
// then environment variables, then command-line flags.
type Config struct {
	// DataDir is the root of the extracted corpus tables (Excel/, TextMap/).
	DataDir string `yaml:"data_dir" validate:"required"`
	// RepoDir is the root of the data repository holding the per-quest
	// nested-structure artifacts under BinOutput/CodexQuest.
	RepoDir string `yaml:"repo_dir" validate:"required"`
	// OutputDir receives transcripts and validation reports.
	OutputDir string `yaml:"output_dir" validate:"required"`
	// Lang selects the text table variant, e.g. CHS, CHT or EN.
	Lang string `yaml:"lang" validate:"required,alphanum"`
	// QuestType filters chapters by their quest-type tag.
	QuestType string `yaml:"quest_type" validate:"required"`
	// Chapters restricts extraction to a subset of chapter identifiers.
	// Empty means all chapters.
	Chapters []int64 `yaml:"chapters"`
	// MergeAll emits the combined all-chapters transcript.
	MergeAll bool `yaml:"merge_all"`
	// WriteText emits per-chapter transcript files.
	WriteText bool `yaml:"write_text"`
	// ValidationOnly skips all transcript output and only produces the
	// coverage report and sample file.
	ValidationOnly bool `yaml:"validation_only"`
	// SampleCount is the validation sample reservoir capacity.
	SampleCount int `yaml:"sample_count" validate:"gte=0"`
	// Seed seeds the sampling random source. Zero picks a time-based seed;
	// any other value makes the sample reproducible.
	Seed int64 `yaml:"seed"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		DataDir:     "data",
		RepoDir:     "AnimeGameData",
		OutputDir:   "output",
		Lang:        "CHS",
		QuestType:   "AQ",
		MergeAll:    true,
		WriteText:   true,
		SampleCount: 20,
	}
}

// Load resolves the configuration from defaults, the optional YAML file at
// path, and environment variables. The result is not yet validated; callers
// apply flag overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DataDir = util.GetEnvString("EXTRACT_DATA_DIR", c.DataDir)
	c.RepoDir = util.GetEnvString("EXTRACT_REPO_DIR", c.RepoDir)
	c.OutputDir = util.GetEnvString("EXTRACT_OUTPUT_DIR", c.OutputDir)
	c.Lang = util.GetEnvString("EXTRACT_LANG", c.Lang)
	c.QuestType = util.GetEnvString("EXTRACT_QUEST_TYPE", c.QuestType)
	c.MergeAll = util.GetEnvBool("EXTRACT_MERGE_ALL", c.MergeAll)
	c.WriteText = util.GetEnvBool("EXTRACT_WRITE_TEXT", c.WriteText)
	c.ValidationOnly = util.GetEnvBool("EXTRACT_VALIDATION_ONLY", c.ValidationOnly)
	c.SampleCount = util.GetEnvInt("EXTRACT_SAMPLE_COUNT", c.SampleCount)
	c.Seed = util.GetEnvInt64("EXTRACT_SEED", c.Seed)
	c.Debug = util.GetEnvBool("DEBUG", c.Debug)

	if chapters := util.GetEnv("EXTRACT_CHAPTERS"); chapters != "" {
		if parsed, err := ParseChapterList(chapters); err == nil {
			c.Chapters = parsed
		}
	}
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ChapterSet returns the chapter subset filter as a set, or nil when no
// filter is configured.
func (c Config) ChapterSet() map[int64]struct{} {
	if len(c.Chapters) == 0 {
		return nil
	}
	set := make(map[int64]struct{}, len(c.Chapters))
	for _, id := range c.Chapters {
		set[id] = struct{}{}
	}
	return set
}

// ParseChapterList parses a comma-separated list of chapter identifiers.
func ParseChapterList(s string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chapter id %q: %w", part, err)
		}
		out = append(out, id)
	}
	return out, nil
}
