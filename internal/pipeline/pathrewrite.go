package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidAssetBase is returned for an asset base that is neither a
// directory path nor an http, https or file URL.
var ErrInvalidAssetBase = errors.New("invalid asset base")

// assetPrefixes are the root-relative paths the sheet templates and styles
// reference bundled artwork and fonts under.
var assetPrefixes = []string{"/images/", "/fonts/"}

// cssURLPattern matches url(...) with an optional quote. Group 2 is the URL.
var cssURLPattern = regexp.MustCompile(`url\(\s*(['"]?)([^'")\s]+)(['"]?)\s*\)`)

// AssetBase resolves root-relative asset paths against a directory or URL.
type AssetBase struct {
	dir  string // absolute, when the base is local
	base string // URL without trailing slash, when remote
}

// NewAssetBase parses base. An empty base yields nil, which leaves paths
// untouched.
func NewAssetBase(base string) (*AssetBase, error) {
	if base == "" {
		return nil, nil
	}

	if strings.Contains(base, "://") {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetBase, err)
		}
		switch u.Scheme {
		case "http", "https", "file":
		default:
			return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAssetBase, u.Scheme)
		}
		return &AssetBase{base: strings.TrimSuffix(base, "/")}, nil
	}

	dir, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetBase, err)
	}
	return &AssetBase{dir: dir}, nil
}

// Resolve returns the absolute URL for a root-relative asset path. ok is
// false when p is not an asset path or would escape a local base.
func (a *AssetBase) Resolve(p string) (resolved string, ok bool) {
	if a == nil || !isAssetPath(p) {
		return "", false
	}
	if a.dir == "" {
		return a.base + p, true
	}

	// Query and fragment have no meaning for a local file.
	if i := strings.IndexAny(p, "?#"); i != -1 {
		p = p[:i]
	}
	abs := filepath.Join(a.dir, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	if !isPathUnderDir(abs, a.dir) {
		return "", false
	}
	return pathToFileURL(abs), true
}

func isAssetPath(p string) bool {
	for _, prefix := range assetPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// RewriteCSS rewrites url(...) asset references in a stylesheet.
func (a *AssetBase) RewriteCSS(css string) string {
	if a == nil {
		return css
	}
	return cssURLPattern.ReplaceAllStringFunc(css, func(m string) string {
		sub := cssURLPattern.FindStringSubmatch(m)
		resolved, ok := a.Resolve(sub[2])
		if !ok {
			return m
		}
		return `url("` + resolved + `")`
	})
}

// RewriteHTML rewrites asset references in a full HTML document:
// img[src], link[href], inline style attributes and <style> elements.
// Absolute URLs and paths outside the asset prefixes are left alone.
func (a *AssetBase) RewriteHTML(htmlContent string) (string, error) {
	if a == nil {
		return htmlContent, nil
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}
	a.rewriteNode(doc)

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (a *AssetBase) rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			a.rewriteAttr(n, "src")
		case "link":
			a.rewriteAttr(n, "href")
		case "style":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					c.Data = a.RewriteCSS(c.Data)
				}
			}
		}
		for i, attr := range n.Attr {
			if attr.Key == "style" {
				n.Attr[i].Val = a.RewriteCSS(attr.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		a.rewriteNode(c)
	}
}

func (a *AssetBase) rewriteAttr(n *html.Node, key string) {
	for i, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		if resolved, ok := a.Resolve(attr.Val); ok {
			n.Attr[i].Val = resolved
		}
	}
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
