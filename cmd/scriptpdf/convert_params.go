package main

import (
	"fmt"
	"io"
	"log/slog"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/config"
	"github.com/alnah/go-scriptpdf/internal/fileutil"
	"github.com/alnah/go-scriptpdf/internal/logging"
)

// Size limits of files the CLI reads besides scripts.
const (
	maxCatalogSize = 16 << 20
	maxCSSSize     = 1 << 20
)

// settings is the configuration of one command run after merging config
// file, environment and flags.
type settings struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer // releases the log file
}

// loadSettings loads the config file named by the flag or SCRIPTPDF_CONFIG
// and applies environment overrides. Flags are merged by the caller, which
// then calls finishSettings.
func loadSettings(common *commonFlags, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Environ())
	if err != nil {
		return nil, err
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// finishSettings validates the merged config and builds the logger.
func finishSettings(cfg *config.Config, common *commonFlags, env *Environment) (*settings, error) {
	mergeCommonFlags(common, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}, env.Stderr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return &settings{cfg: cfg, logger: logger, closer: closer}, nil
}

// mergeCommonFlags applies logging flags. An explicit --log-level wins over
// --verbose and --quiet.
func mergeCommonFlags(f *commonFlags, cfg *config.Config) {
	switch {
	case f.logLevel != "":
		cfg.Logging.Level = f.logLevel
	case f.verbose:
		cfg.Logging.Level = "debug"
	case f.quiet:
		cfg.Logging.Level = "error"
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
}

// mergeSheetFlags merges sheet flags into config. CLI values override
// config values; --no-* flags only ever turn an option off.
func mergeSheetFlags(f *sheetFlags, cfg *config.Config) {
	s := &cfg.Sheet

	if f.copies != 0 {
		s.Copies = f.copies
	}
	if f.overleaf != "" {
		s.Overleaf = f.overleaf
	}
	if f.teensy {
		s.Teensy = true
	}
	if len(f.colors) > 0 {
		s.Colors = f.colors
	}
	if f.logo != "" {
		s.Logo = f.logo
	}
	if f.oldJinxes {
		s.UseOldJinxes = true
	}
	if f.includeMargins {
		s.IncludeMargins = true
	}
	if f.solidTitle {
		s.SolidTitle = true
	}
	if f.appearance != "" {
		s.Appearance = f.appearance
	}
	if f.iconScale != 0 {
		s.IconScale = f.iconScale
	}
	if f.minorWords {
		s.FormatMinorWords = true
	}
	if f.jinxIcons != "" {
		s.InlineJinxIcons = f.jinxIcons
	}
	if f.titleFont != "" {
		s.TitleFont = f.titleFont
	}
	if f.fontURL != "" {
		s.CustomFontURL = f.fontURL
	}

	disable := []struct {
		set    bool
		target **bool
	}{
		{f.noNightSheet, &s.NightSheet},
		{f.noLogo, &s.ShowLogo},
		{f.noTitle, &s.ShowTitle},
		{f.noAuthor, &s.ShowAuthor},
		{f.noJinxes, &s.ShowJinxes},
		{f.noSwirls, &s.ShowSwirls},
		{f.noNightOrder, &s.DisplayNightOrder},
		{f.noPlayerCounts, &s.DisplayPlayerCounts},
	}
	for _, d := range disable {
		if d.set {
			off := false
			*d.target = &off
		}
	}

	if f.width != 0 {
		s.Dimensions.Width = f.width
	}
	if f.height != 0 {
		s.Dimensions.Height = f.height
	}
	if f.margin != 0 {
		s.Dimensions.Margin = f.margin
	}
	if f.bleed != 0 {
		s.Dimensions.Bleed = f.bleed
	}
}

// mergeRenderFlags merges asset flags into config.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	r := &cfg.Render
	if f.assetBase != "" {
		r.AssetBase = f.assetBase
	}
	if f.assetPath != "" {
		r.AssetPath = f.assetPath
	}
	if f.iconURL != "" {
		r.IconURLTemplate = f.iconURL
	}
	if f.style != "" {
		r.Style = f.style
	}
	if f.template != "" {
		r.Template = f.template
	}
	if f.css != "" {
		r.CSS = f.css
	}
	if f.catalog != "" {
		r.Catalog = f.catalog
	}
}

// buildOptions converts the sheet section of cfg into library options.
// Unset fields keep the scriptpdf defaults.
func buildOptions(cfg *config.Config) *scriptpdf.Options {
	o := scriptpdf.DefaultOptions()
	s := cfg.Sheet

	if s.Copies > 0 {
		o.NumberOfCharacterSheets = s.Copies
	}
	if s.Overleaf != "" {
		o.Overleaf = scriptpdf.Overleaf(s.Overleaf)
	}
	o.Teensy = s.Teensy
	if len(s.Colors) > 0 {
		o.Colors = append([]string(nil), s.Colors...)
	}
	o.Logo = s.Logo
	o.UseOldJinxes = s.UseOldJinxes
	o.IncludeMargins = s.IncludeMargins
	o.SolidTitle = s.SolidTitle
	if s.Appearance != "" {
		o.Appearance = scriptpdf.Appearance(s.Appearance)
	}
	if s.IconScale > 0 {
		o.IconScale = s.IconScale
	}
	o.FormatMinorWords = s.FormatMinorWords
	if s.InlineJinxIcons != "" {
		o.InlineJinxIcons = scriptpdf.JinxIconMode(s.InlineJinxIcons)
	}
	if cfg.Render.IconURLTemplate != "" {
		o.IconURLTemplate = cfg.Render.IconURLTemplate
	}
	if s.TitleFont != "" {
		o.TitleFont = s.TitleFont
	}
	if s.TitleLetterSpacing != nil {
		o.TitleLetterSpacing = *s.TitleLetterSpacing
	}
	o.TitleWordSpacing = s.TitleWordSpacing
	o.CustomFontURL = s.CustomFontURL

	setBool(&o.ShowNightSheet, s.NightSheet)
	setBool(&o.ShowLogo, s.ShowLogo)
	setBool(&o.ShowTitle, s.ShowTitle)
	setBool(&o.ShowAuthor, s.ShowAuthor)
	setBool(&o.ShowJinxes, s.ShowJinxes)
	setBool(&o.ShowSwirls, s.ShowSwirls)
	setBool(&o.DisplayNightOrder, s.DisplayNightOrder)
	setBool(&o.DisplayPlayerCounts, s.DisplayPlayerCounts)

	d := s.Dimensions
	if d.Width > 0 {
		o.Dimensions.Width = d.Width
	}
	if d.Height > 0 {
		o.Dimensions.Height = d.Height
	}
	o.Dimensions.Margin = d.Margin
	o.Dimensions.Bleed = d.Bleed

	return o
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// converterOptions builds the converter-wide options from cfg.
func converterOptions(cfg *config.Config, logger *slog.Logger) ([]scriptpdf.Option, error) {
	opts := []scriptpdf.Option{scriptpdf.WithLogger(logger)}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, scriptpdf.WithTimeout(timeout))
	}

	r := cfg.Render
	if r.Catalog != "" {
		data, err := fileutil.ReadLimited(r.Catalog, maxCatalogSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadCatalog, err)
		}
		opts = append(opts, scriptpdf.WithCatalog(data))
	}
	if r.AssetBase != "" {
		opts = append(opts, scriptpdf.WithAssetBase(r.AssetBase))
	}
	if r.AssetPath != "" {
		opts = append(opts, scriptpdf.WithAssetPath(r.AssetPath))
	}
	if r.Style != "" {
		opts = append(opts, scriptpdf.WithStyle(r.Style))
	}
	if r.Template != "" {
		opts = append(opts, scriptpdf.WithTemplateSet(r.Template))
	}
	return opts, nil
}

// readUserCSS returns the content of the --css file, or "" when unset.
func readUserCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := fileutil.ReadLimited(path, maxCSSSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}

// closeLogger releases the log file, reporting a failure on w.
func (s *settings) closeLogger(w io.Writer) {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		fmt.Fprintf(w, "warning: closing log file: %v\n", err)
	}
}
