package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"letterrush/internal/cache"
	"letterrush/internal/llm"
	"letterrush/internal/model"
	"letterrush/internal/source"
	"letterrush/internal/validate"
)

// newLogger builds the zap logger per the log config. Verbose forces debug.
func newLogger(cfg model.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildValidator assembles the validation core from configuration: cache,
// shared source client, both adapters, and the optional LLM adjudicator.
func buildValidator(cfg *model.Config, log *zap.Logger) *validate.Validator {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	client := source.NewClient(cfg, store, log)
	enc := source.NewEncyclopedia(client, cfg.Sources.EncyclopediaBaseURL, cfg.Sources.MaxSearchResults)
	dict := source.NewDictionary(client, cfg.Sources.DictionaryBaseURL)

	opts := []validate.Option{validate.WithLogger(log)}
	if cfg.LLM.Provider != "" {
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		adjudicator, err := llm.New(cfg.LLM, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM adjudicator disabled: %v\n", err)
		} else {
			opts = append(opts, validate.WithAdjudicator(adjudicator))
		}
	}

	return validate.New(enc, dict, cfg.Concurrency.BatchWorkers, opts...)
}
