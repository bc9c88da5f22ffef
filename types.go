package scriptpdf

import (
	"log/slog"
	"time"
)

// Input is a single conversion request.
type Input struct {
	// Script is the raw script JSON: an array of character ids, character
	// objects and an optional "_meta" object.
	Script []byte
	// Options controls layout and appearance. Nil means DefaultOptions.
	Options *Options
	// CSS is appended after the sheet style and may override it.
	CSS string
	// HTMLOnly skips PDF generation.
	HTMLOnly bool
}

// Result holds the output of a conversion.
type Result struct {
	HTML []byte
	PDF  []byte // nil when Input.HTMLOnly is set
	Plan Plan   // pages of the final PDF, after duplication
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds converter-wide settings gathered from options.
type converterConfig struct {
	timeout      time.Duration
	logger       *slog.Logger
	catalogJSON  []byte
	assetBase    string
	assetPath    string
	styleInput   string
	templateName string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the page load timeout of the browser.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("scriptpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger for conversion diagnostics such as unknown
// character ids or dropped night order entries. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithCatalog sets the character catalog used to resolve bare character
// ids and to look up jinxes. data is catalog JSON of the form
// {"characters": [...], "jinxes": [...]}.
func WithCatalog(data []byte) Option {
	return func(c *Converter) {
		c.cfg.catalogJSON = data
	}
}

// WithAssetBase sets where /images/ and /fonts/ URLs in the sheets point to:
// an http(s) or file URL, or a local directory.
func WithAssetBase(base string) Option {
	return func(c *Converter) {
		c.cfg.assetBase = base
	}
}

// WithAssetPath sets a directory overriding the built-in styles and
// templates. Missing assets fall back to the embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithStyle sets the sheet stylesheet: a style name, a CSS file path, or
// CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplateSet selects a template set by name.
func WithTemplateSet(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}
