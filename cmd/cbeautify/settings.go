package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/config"
	"github.com/alnah/go-cbeautify/internal/hints"
)

// loadRunConfig builds the configuration of a run from the config file
// (flag, then CBEAUTIFY_CONFIG) and the environment. Flags are merged by the
// caller.
func loadRunConfig(flagConfig string, stderr io.Writer) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(stderr)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// configSearchPaths lists where a config name is looked up, for hints.
func configSearchPaths(name string) []string {
	paths := []string{name + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "cbeautify", name+".yaml"))
	}
	return paths
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// A positional input is used when --input is not given.
func mergeFlags(flags *beautifyFlags, positional []string, cfg *config.Config) {
	switch {
	case flags.paths.input != "":
		cfg.Input.Dir = flags.paths.input
	case len(positional) > 0:
		cfg.Input.Dir = positional[0]
	}
	if flags.paths.output != "" {
		cfg.Output.Dir = flags.paths.output
	}
	if flags.paths.cssDir != "" {
		cfg.CSS.Dir = flags.paths.cssDir
	}

	if flags.assets.style != "" {
		cfg.Highlight.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	off := false
	if flags.features.noHighlight {
		cfg.Highlight.Enabled = &off
	}
	if flags.features.noNavbar {
		cfg.Navbar.Enabled = &off
	}
	if flags.features.noIcon {
		cfg.Icon.Enabled = &off
	}

	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
}

// beautifierOptions translates config into library options.
func beautifierOptions(cfg *config.Config) []cbeautify.Option {
	return []cbeautify.Option{
		cbeautify.WithStyle(cfg.Highlight.Style),
		cbeautify.WithLexer(cfg.Highlight.Lexer),
		cbeautify.WithCodeSelector(cfg.Highlight.Selector),
		cbeautify.WithNavSelector(cfg.Navbar.Selector),
		cbeautify.WithStylesheet(cfg.CSS.Stylesheet),
		cbeautify.WithAssetPath(cfg.Assets.BasePath),
		cbeautify.WithHighlight(cfg.Highlight.IsEnabled()),
		cbeautify.WithNavbar(cfg.Navbar.IsEnabled()),
		cbeautify.WithIcon(cfg.Icon.IsEnabled()),
	}
}

// newBeautifier creates a Beautifier from config, adding hints to the
// errors a user can fix.
func newBeautifier(cfg *config.Config) (*cbeautify.Beautifier, error) {
	b, err := cbeautify.NewBeautifier(beautifierOptions(cfg)...)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, cbeautify.ErrStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(cbeautify.HighlightStyles()))
	case errors.Is(err, cbeautify.ErrInvalidAssetPath):
		return nil, fmt.Errorf("%w%s", err, hints.ForAssetPath())
	default:
		return nil, err
	}
}
