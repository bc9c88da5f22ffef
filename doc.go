// Package scriptpdf turns Blood on the Clocktower custom scripts into
// printable PDF character sheets using headless Chrome.
//
// # Quick Start
//
// Create a converter, convert a script, and close when done:
//
//	conv, err := scriptpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, scriptpdf.Input{
//	    Script: []byte(`[{"id":"_meta","name":"Tiny Town"},"washerwoman","imp"]`),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tiny-town.pdf", result.PDF, 0644)
//
// The result holds the PDF bytes, the intermediate HTML and the pagination
// plan. Use Input.HTMLOnly to skip PDF generation.
//
// # Conversion Pipeline
//
//  1. Script validation and parsing (bare ids resolve through a Catalog)
//  2. Team grouping, jinx lookup and night order calculation
//  3. Pagination into physical sides (character sheets, backs, night sheets)
//  4. HTML rendering, asset URL rewriting and CSS injection
//  5. PDF rendering via headless Chrome (go-rod)
//  6. Page duplication for multiple copies (pdfcpu)
//
// # Configuration
//
// Converter-wide settings use functional options:
//
//	conv, err := scriptpdf.NewConverter(
//	    scriptpdf.WithTimeout(2 * time.Minute),
//	    scriptpdf.WithCatalog(catalogJSON),
//	    scriptpdf.WithAssetBase("https://example.com/assets"),
//	)
//
// Sheet settings travel with each Input:
//
//	opts := scriptpdf.DefaultOptions()
//	opts.NumberOfCharacterSheets = 3
//	opts.Overleaf = scriptpdf.OverleafInfo
//	result, err := conv.Convert(ctx, scriptpdf.Input{Script: data, Options: opts})
//
// Plan computes the page layout without starting a browser.
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple browser instances:
//
//	pool := scriptpdf.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run (~/.cache/rod/browser/). Use
// ROD_BROWSER_BIN to point at a pre-installed browser.
package scriptpdf
