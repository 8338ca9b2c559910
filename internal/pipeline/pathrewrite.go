package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveImagePaths rewrites relative img[src] values in an HTML fragment to
// absolute file:// URLs under sourceDir. The document is written to the
// output directory, so image paths relative to the markdown source would
// otherwise break. Links are left alone: they point at published pages.
// An empty sourceDir returns the fragment unchanged.
func ResolveImagePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	changed := false
	for _, n := range nodes {
		if rewriteImages(n, absSourceDir) {
			changed = true
		}
	}
	if !changed {
		return fragment, nil
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteImages walks the tree and reports whether any src was rewritten.
func rewriteImages(n *html.Node, sourceDir string) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !isRelativePath(attr.Val) {
				continue
			}
			absPath := filepath.Join(sourceDir, attr.Val)
			if !isPathUnderDir(absPath, sourceDir) {
				continue
			}
			n.Attr[i].Val = pathToFileURL(absPath)
			changed = true
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteImages(c, sourceDir) {
			changed = true
		}
	}
	return changed
}

// isRelativePath returns true for paths that are not URLs, anchors or absolute.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	for _, scheme := range []string{"http://", "https://", "file://", "data:"} {
		if strings.HasPrefix(path, scheme) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks that absPath does not escape dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
