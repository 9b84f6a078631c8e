package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// Style selects how selection markers are written.
type Style uint8

const (
	// StyleModel writes "[" and "]" for every range end.
	StyleModel Style = iota
	// StyleView writes "{" and "}" for range ends inside text.
	StyleView
)

var textMarks = map[string]string{"[": "{", "]": "}"}

type point struct {
	parent *tree.Node
	offset int
}

// Stringify writes the content of root with the ranges of sel marked. A
// nil selection writes no markers.
func Stringify(root *tree.Node, sel *tree.Selection, style Style) (string, error) {
	markers := make(map[point][]string)
	if sel != nil {
		for _, r := range sel.Ranges() {
			startMark, endMark := "[", "]"
			if sel.IsBackward() {
				startMark, endMark = endMark, startMark
			}
			if style == StyleView && r.Start.InText() {
				startMark = textMarks[startMark]
			}
			if style == StyleView && r.End.InText() {
				endMark = textMarks[endMark]
			}
			sp := point{r.Start.Parent, r.Start.Offset}
			ep := point{r.End.Parent, r.End.Offset}
			markers[sp] = append(markers[sp], startMark)
			markers[ep] = append(markers[ep], endMark)
		}
	}

	container := &html.Node{Type: html.DocumentNode}
	appendChildren(container, root, markers)

	var b strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func appendChildren(dst *html.Node, el *tree.Node, markers map[point][]string) {
	for i, child := range el.Children() {
		appendMarkers(dst, markers[point{el, i}])
		if child.IsText() {
			appendText(dst, child, markers)
			continue
		}
		n := &html.Node{Type: html.ElementNode, Data: child.Name(), Attr: attributes(child)}
		appendChildren(n, child, markers)
		dst.AppendChild(n)
	}
	appendMarkers(dst, markers[point{el, el.ChildCount()}])
}

func appendText(dst *html.Node, text *tree.Node, markers map[point][]string) {
	data := []rune(text.Data())
	var b strings.Builder
	for i, r := range data {
		for _, m := range markers[point{text, i}] {
			b.WriteString(m)
		}
		b.WriteRune(r)
	}
	dst.AppendChild(&html.Node{Type: html.TextNode, Data: b.String()})
}

func appendMarkers(dst *html.Node, ms []string) {
	if len(ms) == 0 {
		return
	}
	dst.AppendChild(&html.Node{Type: html.TextNode, Data: strings.Join(ms, "")})
}

// attributes lists class first, then the remaining attributes and the
// inline style in name order.
func attributes(el *tree.Node) []html.Attribute {
	var attrs []html.Attribute
	if classes := el.Classes(); len(classes) > 0 {
		attrs = append(attrs, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	style := el.StyleString()
	styleDone := style == ""
	for _, k := range el.AttrKeys() {
		if !styleDone && k > "style" {
			attrs = append(attrs, html.Attribute{Key: "style", Val: style})
			styleDone = true
		}
		v, _ := el.Attr(k)
		attrs = append(attrs, html.Attribute{Key: k, Val: v})
	}
	if !styleDone {
		attrs = append(attrs, html.Attribute{Key: "style", Val: style})
	}
	return attrs
}
