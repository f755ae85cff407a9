package page

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// DefaultHTML is the built-in host page: a single 520x160 canvas with id
// musicCanvas.
const DefaultHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Stave</title>
</head>
<body>
<canvas id="musicCanvas" width="520" height="160"></canvas>
</body>
</html>
`

// Default parses DefaultHTML.
func Default() *Document {
	doc, err := Parse(strings.NewReader(DefaultHTML))
	if err != nil {
		panic(fmt.Sprintf("page: default page: %v", err))
	}
	return doc
}

// Load reads and parses the HTML page at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: load: %w", err)
	}
	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("page: load %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a document from HTML. Every <canvas> with an id becomes a
// canvas element; other elements with ids are recorded so lookups can tell
// a missing id from a non-canvas one.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse html: %w", err)
	}

	doc := NewDocument()
	var walk func(*html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode {
			if err := doc.addNode(n); err != nil {
				return err
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) addNode(n *html.Node) error {
	if n.Data == "title" && n.FirstChild != nil && d.title == "" {
		d.title = strings.TrimSpace(n.FirstChild.Data)
	}

	id, ok := attr(n, "id")
	if !ok || id == "" {
		return nil
	}
	if d.hasElement(id) {
		// The first element with an id wins, canvas or not.
		return nil
	}
	if n.Data != "canvas" {
		d.addElement(id, n.Data)
		return nil
	}
	w := dimension(n, "width", DefaultCanvasWidth)
	h := dimension(n, "height", DefaultCanvasHeight)
	_, err := d.AddCanvas(id, w, h)
	return err
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val), true
		}
	}
	return "", false
}

// dimension parses a canvas width or height attribute. Missing, negative
// and malformed values fall back to the default, as in HTML.
func dimension(n *html.Node, key string, def int) int {
	v, ok := attr(n, key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return def
	}
	return i
}
