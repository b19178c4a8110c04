package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"promoset/pkg/cfg"
	"promoset/pkg/platform"
	"promoset/pkg/runner"
)

func main() {
	config, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if config == nil {
		return // help requested
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if config.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	opts, err := buildOptions(config)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().Str("version", cfg.Version).Msg("starting promo reconciliation run")

	events, wait := runner.Start(*opts)
	for ev := range events {
		logEvent(logger, ev)
	}

	res, err := wait()
	if err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
	if res.MergeEmpty {
		logger.Warn().Msg("no matching products found; nothing to process")
		return
	}
	if res.HasErrors {
		logger.Warn().Msg("run completed with errors; check the log above")
		os.Exit(1)
	}
	logger.Info().Msg("all processing, validation and audits complete")
}

// buildOptions assembles the runner options from configuration: platform
// definitions (built-in or YAML-overridden) bound to this run's catalog and
// template paths. A platform with no catalog files is skipped, allowing
// single-platform runs.
func buildOptions(config *cfg.Cfg) (*runner.Options, error) {
	defs, err := platform.Load(config.PlatformsFile)
	if err != nil {
		return nil, err
	}

	opts := &runner.Options{
		PromoPath:        config.PromoPath,
		MasterPath:       config.MasterPath,
		OutputDir:        config.OutputDir,
		MinPrice:         config.MinPrice,
		MaxDiscountRatio: config.MaxDiscountRatio,
		SummaryJSONPath:  config.SummaryJSON,
	}

	for _, def := range defs {
		var catalogs []string
		var templates map[string]string

		switch def.Name {
		case "Shopee":
			catalogs = config.ShopeeCatalogs
			templates = map[string]string{"": config.ShopeeTemplate}
		case "TikTok":
			catalogs = config.TikTokCatalogs
			templates = map[string]string{
				"method1": config.TikTokTemplate1,
				"method2": config.TikTokTemplate2,
			}
		default:
			return nil, fmt.Errorf("platform %q has no catalog/template flags; built-in platforms are Shopee and TikTok", def.Name)
		}

		if len(catalogs) == 0 {
			continue
		}
		for _, ch := range def.Channels {
			if templates[ch.Name] == "" {
				return nil, fmt.Errorf("platform %s: missing upload template for channel %q", def.Name, ch.Name)
			}
		}

		opts.Platforms = append(opts.Platforms, runner.PlatformJob{
			Def:          def,
			CatalogPaths: catalogs,
			Templates:    templates,
		})
	}

	if len(opts.Platforms) == 0 {
		return nil, fmt.Errorf("no platform catalogs supplied; pass --shopee-db and/or --tiktok-db")
	}

	return opts, nil
}

func logEvent(logger zerolog.Logger, ev runner.Event) {
	var e *zerolog.Event
	switch ev.Level {
	case runner.LevelError:
		e = logger.Error()
	case runner.LevelWarn:
		e = logger.Warn()
	case runner.LevelDebug:
		e = logger.Debug()
	default:
		e = logger.Info()
	}
	e = e.Str("stage", ev.Stage)
	if ev.Platform != "" {
		e = e.Str("platform", ev.Platform)
	}
	e.Msg(ev.Message)
}
