// Package markdown inspects Typora documents with goldmark.
package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Region is a half-open byte range [Start, Stop) of the source.
type Region struct {
	Start int
	Stop  int
}

// CodeRegions returns the byte ranges of fenced code blocks, indented code
// blocks and inline code spans, sorted by start offset.
func CodeRegions(src string) []Region {
	if src == "" {
		return nil
	}

	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var regions []Region
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				regions = append(regions, Region{Start: seg.Start, Stop: seg.Stop})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					regions = append(regions, Region{Start: t.Segment.Start, Stop: t.Segment.Stop})
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	sort.Slice(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
	return regions
}

// DelimitersInCode counts the \[ and \( openers that sit inside code.
// Conversion still rewrites them; callers use the count as a warning.
func DelimitersInCode(src string) int {
	if !strings.Contains(src, `\[`) && !strings.Contains(src, `\(`) {
		return 0
	}

	count := 0
	for _, r := range CodeRegions(src) {
		chunk := src[r.Start:r.Stop]
		count += strings.Count(chunk, `\[`) + strings.Count(chunk, `\(`)
	}
	return count
}
