// Package booklet expands a single-copy PDF into a multi-copy document by
// repeating whole pages, without rendering again.
package booklet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/alnah/go-scriptpdf/internal/layout"
)

// ErrPageCount is returned when the source document does not hold the
// pages the requested layout expects.
var ErrPageCount = errors.New("unexpected page count")

func init() {
	// pdfcpu would otherwise create a config directory under the user's
	// home on first use.
	api.DisableConfigDir()
}

// Options selects how many copies to produce and how they are laid out.
type Options struct {
	Copies   int
	Overleaf layout.Overleaf
	Teensy   bool
	// SourcePages is the page count the single-copy source must have.
	// Zero only requires the pages being repeated.
	SourcePages int
}

// passthrough reports whether the source is already final.
func (o Options) passthrough() bool {
	return o.Teensy || o.Copies <= 1
}

// PageOrder returns the 0-based source page indices making up the expanded
// document. The source holds a front at index 0 and the page to repeat at
// index 1, followed by any trailing pages (night sheets) that are kept once,
// at the end.
//
// Without overleaf, page 1 is repeated so it appears Copies times. With an
// overleaf, pages 0 and 1 form a front/back pair and Copies-1 extra pairs
// follow the original.
func PageOrder(pageCount int, opts Options) ([]int, error) {
	if opts.passthrough() {
		order := make([]int, pageCount)
		for i := range order {
			order[i] = i
		}
		return order, nil
	}
	if pageCount < 2 {
		return nil, fmt.Errorf("%w: %d copies with overleaf %q need at least 2 source pages, got %d",
			ErrPageCount, opts.Copies, opts.Overleaf, pageCount)
	}
	if opts.SourcePages > 0 && pageCount != opts.SourcePages {
		return nil, fmt.Errorf("%w: layout expects %d source pages, got %d",
			ErrPageCount, opts.SourcePages, pageCount)
	}

	order := make([]int, 0, pageCount+2*(opts.Copies-1))
	order = append(order, 0, 1)
	for range opts.Copies - 1 {
		if opts.Overleaf == layout.OverleafNone || opts.Overleaf == "" {
			order = append(order, 1)
		} else {
			order = append(order, 0, 1)
		}
	}
	for i := 2; i < pageCount; i++ {
		order = append(order, i)
	}
	return order, nil
}

// Duplicate expands pdf according to opts. When no duplication is needed
// pdf is returned unchanged.
func Duplicate(pdf []byte, opts Options) ([]byte, error) {
	if opts.passthrough() {
		return pdf, nil
	}

	conf := newConfig()
	n, err := api.PageCount(bytes.NewReader(pdf), conf)
	if err != nil {
		return nil, fmt.Errorf("reading source PDF: %w", err)
	}
	order, err := PageOrder(n, opts)
	if err != nil {
		return nil, err
	}

	selected := make([]string, len(order))
	for i, p := range order {
		selected[i] = strconv.Itoa(p + 1)
	}

	var out bytes.Buffer
	if err := api.Collect(bytes.NewReader(pdf), &out, selected, newConfig()); err != nil {
		return nil, fmt.Errorf("collecting pages: %w", err)
	}
	return out.Bytes(), nil
}

func newConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
