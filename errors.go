package scriptpdf

import (
	"errors"
	"fmt"

	"github.com/alnah/go-scriptpdf/internal/assets"
	"github.com/alnah/go-scriptpdf/internal/pipeline"
	"github.com/alnah/go-scriptpdf/internal/script"
)

// Sentinel errors for script input. They are the same values the parser
// returns, so errors.Is works on anything Convert or Plan reports.
var (
	ErrInvalidScript     = script.ErrInvalidScript
	ErrTooManyCharacters = script.ErrTooManyCharacters
	ErrScriptTooLarge    = script.ErrScriptTooLarge
	ErrInvalidCatalog    = script.ErrInvalidCatalog
)

// ErrInvalidOptions is wrapped by every option validation error.
var ErrInvalidOptions = errors.New("invalid options")

// Option validation errors.
var (
	ErrInvalidSheetCount   = fmt.Errorf("%w: character sheet count", ErrInvalidOptions)
	ErrInvalidOverleaf     = fmt.Errorf("%w: overleaf", ErrInvalidOptions)
	ErrInvalidAppearance   = fmt.Errorf("%w: appearance", ErrInvalidOptions)
	ErrInvalidJinxIconMode = fmt.Errorf("%w: inline jinx icons", ErrInvalidOptions)
	ErrInvalidDimensions   = fmt.Errorf("%w: dimensions", ErrInvalidOptions)
	ErrInvalidColor        = fmt.Errorf("%w: color", ErrInvalidOptions)
	ErrInvalidIconScale    = fmt.Errorf("%w: icon scale", ErrInvalidOptions)
)

// Rendering errors.
var (
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrDuplicatePages = errors.New("page duplication failed")
)

// Asset loading errors.
var (
	ErrStyleNotFound       = assets.ErrStyleNotFound
	ErrTemplateSetNotFound = assets.ErrTemplateSetNotFound
	ErrInvalidAssetPath    = errors.New("invalid asset path")
	ErrInvalidAssetBase    = pipeline.ErrInvalidAssetBase
)
