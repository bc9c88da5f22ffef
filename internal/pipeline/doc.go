// Package pipeline post-processes rendered sheet HTML before printing.
//
// Stages:
//   - Asset URL rewriting: root-relative /images/ and /fonts/ references in
//     markup and stylesheets are pointed at a configurable asset base (a
//     local directory or a URL)
//   - CSS injection of the page geometry, the sheet style and user CSS
//
// Rendering the HTML itself lives in internal/render and printing it in the
// root scriptpdf package.
package pipeline
