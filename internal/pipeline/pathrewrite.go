package pipeline

import (
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveLocalPaths points relative img[src] and a[href] references in an
// HTML fragment at file:// URLs under baseDir, so the browser finds images
// next to the Markdown source when it loads the document from a temp file.
//
// Anchors, URLs with a scheme, absolute paths and references that would
// leave baseDir are kept as written. Tags that are not rewritten are copied
// byte for byte.
func ResolveLocalPaths(fragment, baseDir string) (string, error) {
	if baseDir == "" || fragment == "" {
		return fragment, nil
	}
	root, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(fragment))

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", z.Err()
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.WriteString(raw)
			continue
		}

		tok := z.Token()
		if !rewriteToken(&tok, root) {
			out.WriteString(raw)
			continue
		}
		out.WriteString(tok.String())
	}
}

// rewriteToken resolves the reference attribute of img and a tags.
// It reports whether the token changed.
func rewriteToken(tok *html.Token, root string) bool {
	var key string
	switch tok.DataAtom {
	case atom.Img:
		key = "src"
	case atom.A:
		key = "href"
	default:
		return false
	}

	changed := false
	for i, attr := range tok.Attr {
		if attr.Namespace != "" || attr.Key != key {
			continue
		}
		if resolved, ok := fileURL(attr.Val, root); ok {
			tok.Attr[i].Val = resolved
			changed = true
		}
	}
	return changed
}

// fileURL turns a relative reference into a file:// URL under root.
func fileURL(ref, root string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Path == "" {
		return "", false
	}
	if filepath.IsAbs(u.Path) || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	abs := filepath.Join(root, filepath.FromSlash(u.Path))
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", false
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/docs -> /C:/docs
	}
	resolved := url.URL{Scheme: "file", Path: p, RawQuery: u.RawQuery, Fragment: u.Fragment}
	return resolved.String(), true
}
