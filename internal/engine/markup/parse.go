package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// Fragment is the result of parsing markup.
type Fragment struct {
	// Root is a container holding the parsed top-level nodes.
	Root     *tree.Node
	Ranges   []tree.Range
	Backward bool
}

// RangesIn returns the ranges rebased so that positions directly inside
// the fragment container point into root instead. Call it before moving
// the fragment's children into root.
func (f *Fragment) RangesIn(root *tree.Node) []tree.Range {
	rebase := func(p tree.Position) tree.Position {
		if p.Parent == f.Root {
			return tree.Position{Parent: root, Offset: p.Offset}
		}
		return p
	}
	ranges := make([]tree.Range, len(f.Ranges))
	for i, r := range f.Ranges {
		ranges[i] = tree.Range{Start: rebase(r.Start), End: rebase(r.End)}
	}
	return ranges
}

type marker struct {
	open   bool
	parent *tree.Node
	offset int
}

type parser struct {
	stack   []*tree.Node
	markers []marker
	// text is the text node receiving characters, if any.
	text *tree.Node
}

// Parse reads markup into a fragment.
func Parse(data string) (*Fragment, error) {
	frag := &Fragment{Root: tree.NewElement("$fragment")}
	p := &parser{stack: []*tree.Node{frag.Root}}

	z := html.NewTokenizer(strings.NewReader(data))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return p.finish(frag)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidMarkup, z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			el := tree.NewElement(string(name))
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				el.SetAttr(string(k), string(v))
			}
			p.current().AppendChild(el)
			p.text = nil
			if tt == html.StartTagToken {
				p.stack = append(p.stack, el)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(p.stack) == 1 || p.current().Name() != string(name) {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrInvalidMarkup, name)
			}
			p.stack = p.stack[:len(p.stack)-1]
			p.text = nil
		case html.TextToken:
			p.addText(string(z.Text()))
		}
	}
}

func (p *parser) current() *tree.Node {
	return p.stack[len(p.stack)-1]
}

func (p *parser) addText(s string) {
	if strings.TrimFunc(s, unicode.IsSpace) == "" {
		return
	}
	for _, r := range s {
		switch r {
		case '[', ']':
			m := marker{open: r == '['}
			if p.text != nil {
				m.parent, m.offset = p.text, p.text.Len()
			} else {
				m.parent, m.offset = p.current(), p.current().ChildCount()
			}
			p.markers = append(p.markers, m)
		default:
			if p.text == nil {
				p.text = tree.NewText("")
				p.current().AppendChild(p.text)
			}
			p.text.SetData(p.text.Data() + string(r))
		}
	}
}

func (p *parser) finish(frag *Fragment) (*Fragment, error) {
	if len(p.stack) != 1 {
		return nil, fmt.Errorf("%w: unclosed <%s>", ErrInvalidMarkup, p.current().Name())
	}
	if len(p.markers)%2 != 0 {
		return nil, fmt.Errorf("%w: unbalanced selection markers", ErrInvalidMarkup)
	}
	for i := 0; i < len(p.markers); i += 2 {
		a, b := p.markers[i], p.markers[i+1]
		if a.open == b.open {
			return nil, fmt.Errorf("%w: mismatched selection markers", ErrInvalidMarkup)
		}
		if !a.open {
			frag.Backward = true
		}
		start := tree.NewPosition(a.parent, a.offset)
		end := tree.NewPosition(b.parent, b.offset)
		frag.Ranges = append(frag.Ranges, tree.NewRange(start, end))
	}
	return frag, nil
}
