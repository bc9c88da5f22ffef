package scriptpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-scriptpdf/internal/fileutil"
	"github.com/alnah/go-scriptpdf/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	PaperWidthMM  float64
	PaperHeightMM float64
}

const mmPerInch = 25.4

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := newLauncher(os.Getenv)
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// newLauncher configures Chrome from the environment. ROD_BROWSER_BIN
// selects an installed browser instead of the downloaded one.
func newLauncher(getenv func(string) string) *launcher.Launcher {
	l := launcher.New()
	if bin := getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	return l.NoSandbox(sandboxDisabled(getenv))
}

// sandboxDisabled reports whether Chrome runs without its sandbox, which
// CI runners and containers with a preinstalled browser require.
func sandboxDisabled(getenv func(string) string) bool {
	return getenv("ROD_NO_SANDBOX") == "1" ||
		getenv("CI") == "true" ||
		getenv("ROD_BROWSER_BIN") != ""
}

// killLauncher stops the Chrome process tree started by the launcher.
func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher = nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it
// to PDF. Page loading is bounded by the context deadline, or by the
// renderer timeout when the context has none.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wait, err := r.loadTimeout(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Icons and web fonts may still be decoding after the load event.
	loading := page.Context(ctx).Timeout(wait)
	if err := loading.WaitLoad(); err != nil {
		return nil, pageLoadError(ctx, err)
	}
	if err := loading.WaitIdle(wait); err != nil {
		return nil, pageLoadError(ctx, err)
	}

	reader, err := page.Context(ctx).PDF(buildPDFOptions(opts))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// loadTimeout returns how long a page may take to load.
func (r *rodRenderer) loadTimeout(ctx context.Context) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout, nil
	}
	left := time.Until(deadline)
	if left <= 0 {
		return 0, context.DeadlineExceeded
	}
	return min(left, r.timeout), nil
}

// pageLoadError reports cancellation as is and anything else as ErrPageLoad.
func pageLoadError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", ErrPageLoad, err)
}

// buildPDFOptions constructs proto.PagePrintToPDF for a borderless page of
// the requested size. The sheet CSS draws its own margins.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	width, height := A4.Width, A4.Height
	if opts != nil && opts.PaperWidthMM > 0 && opts.PaperHeightMM > 0 {
		width, height = opts.PaperWidthMM, opts.PaperHeightMM
	}

	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(width / mmPerInch),
		PaperHeight:       floatPtr(height / mmPerInch),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout),
	}
}

// ToPDF writes htmlContent to a temporary file and prints it with headless
// Chrome. Loading from a file keeps file:// asset URLs reachable.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
