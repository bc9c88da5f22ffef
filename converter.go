package scriptpdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-scriptpdf/internal/assets"
	"github.com/alnah/go-scriptpdf/internal/booklet"
	"github.com/alnah/go-scriptpdf/internal/fileutil"
	"github.com/alnah/go-scriptpdf/internal/layout"
	"github.com/alnah/go-scriptpdf/internal/pipeline"
	"github.com/alnah/go-scriptpdf/internal/render"
	"github.com/alnah/go-scriptpdf/internal/script"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.CSSInjector = (*pipeline.CSSInjection)(nil)
	_ script.Catalog       = (*script.MapCatalog)(nil)
	_ pdfConverter         = (*rodConverter)(nil)
	_ pdfRenderer          = (*rodRenderer)(nil)
)

// Converter orchestrates the script-to-PDF pipeline.
// Create with NewConverter, use Convert for conversion, and Close when done.
// A Converter owns one browser and converts one document at a time; use a
// ConverterPool for parallel work.
type Converter struct {
	cfg          converterConfig
	logger       *slog.Logger
	assetLoader  assets.AssetLoader
	catalog      script.Catalog
	assetBase    *pipeline.AssetBase
	style        string
	renderer     *render.Renderer
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// NewConverter creates a Converter. The browser is started lazily on the
// first PDF conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout},
		catalog:     script.EmptyCatalog(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver

	if len(c.cfg.catalogJSON) > 0 {
		catalog, err := script.LoadCatalog(c.cfg.catalogJSON)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("catalog loaded",
			slog.Int("characters", catalog.Len()),
			slog.Int("jinxes", len(catalog.Jinxes())))
		c.catalog = catalog
	}

	c.assetBase, err = pipeline.NewAssetBase(c.cfg.assetBase)
	if err != nil {
		return nil, err
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	name := c.cfg.templateName
	if name == "" {
		name = assets.DefaultTemplateSetName
	}
	set, err := c.assetLoader.LoadTemplateSet(name)
	if err != nil {
		return nil, fmt.Errorf("loading template set: %w", err)
	}
	c.renderer, err = render.New(set, c.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	c.logger.Debug("converter ready",
		slog.String("templateSet", name),
		slog.Bool("customAssets", resolver.HasCustomLoader()),
		slog.Int("catalogJinxes", len(c.catalog.Jinxes())))

	// Tests inject a fake before the first conversion.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// prepared is a script validated, resolved and laid out for one Input.
type prepared struct {
	opts     *Options
	resolved *script.Resolved
	plan     layout.Plan // final document
	render   layout.Plan // sides actually rendered to HTML
}

// prepare runs every step up to, but excluding, HTML rendering.
func (c *Converter) prepare(input Input) (*prepared, error) {
	opts := input.Options.orDefault()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	parsed, err := script.Parse(input.Script, c.catalog, c.logger)
	if err != nil {
		return nil, err
	}
	resolved := script.Resolve(parsed, opts.resolveOptions(c.catalog), c.logger)

	p := &prepared{
		opts:     opts,
		resolved: resolved,
		plan:     layout.Build(opts.layoutRequest(resolved, opts.NumberOfCharacterSheets)),
	}
	p.render = p.plan
	if opts.duplicates() {
		p.render = layout.Build(opts.layoutRequest(resolved, 1))
	}
	return p, nil
}

// Plan returns the page layout Convert would produce for input, without
// rendering anything.
func (c *Converter) Plan(input Input) (Plan, error) {
	p, err := c.prepare(input)
	if err != nil {
		return Plan{}, err
	}
	return planFromLayout(p.plan), nil
}

// Convert runs the full pipeline and returns the result containing HTML,
// PDF and the final page plan. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	start := time.Now()
	p, err := c.prepare(input)
	if err != nil {
		return nil, err
	}

	style := p.opts.style()
	htmlContent, err := c.renderer.Render(ctx, render.Document{
		Script: p.resolved,
		Plan:   p.render,
		Style:  style,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	htmlContent, err = c.assetBase.RewriteHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: rewriting asset URLs: %v", ErrHTMLRender, err)
	}

	// Order matters: geometry first, sheet style next, user CSS last so it
	// can override both.
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent,
		render.PageCSS(style, p.opts.Teensy),
		c.assetBase.RewriteCSS(c.style),
		c.assetBase.RewriteCSS(input.CSS),
	)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		HTML: []byte(htmlContent),
		Plan: planFromLayout(p.plan),
	}
	if input.HTMLOnly {
		return res, nil
	}

	width, height := p.opts.paperSize()
	pdf, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		PaperWidthMM:  width,
		PaperHeightMM: height,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	if p.opts.duplicates() {
		pdf, err = booklet.Duplicate(pdf, booklet.Options{
			Copies:      p.opts.NumberOfCharacterSheets,
			Overleaf:    p.opts.overleaf(),
			SourcePages: p.render.Pages(),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDuplicatePages, err)
		}
	}
	res.PDF = pdf

	c.logger.Info("script converted",
		slog.String("title", p.resolved.Title),
		slog.Int("characters", len(p.resolved.Characters())),
		slog.Int("pages", p.plan.Pages()),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Without a style input the built-in default style is used.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsCSS(input) {
		c.style = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}

// DuplicatePages expands a rendered single-copy PDF to the number of
// character sheet copies in o. The PDF must hold the character front at
// page 1 and its back (or the repeated sheet) at page 2; any further pages
// are kept once, at the end. A nil o means DefaultOptions.
func DuplicatePages(pdf []byte, o *Options) ([]byte, error) {
	o = o.orDefault()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	out, err := booklet.Duplicate(pdf, booklet.Options{
		Copies:   o.NumberOfCharacterSheets,
		Overleaf: o.overleaf(),
		Teensy:   o.Teensy,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDuplicatePages, err)
	}
	return out, nil
}

// IsBrowserError reports whether err comes from the headless browser.
func IsBrowserError(err error) bool {
	return errors.Is(err, ErrBrowserConnect) || errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) || errors.Is(err, ErrPDFGeneration)
}
