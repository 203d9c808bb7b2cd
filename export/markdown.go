package export

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Segment is a run of response text with uniform emphasis.
type Segment struct {
	Text string
	Bold bool
}

// Line is one display line of a response: ordered segments without breaks.
type Line struct {
	Segments []Segment
}

// ParseLines resolves inline **bold** spans and line breaks in assistant
// response text into display lines. Soft and hard breaks inside a paragraph
// start a new line, as do paragraph boundaries, so single newlines in the
// source are preserved as paragraph breaks in the rendered artifact.
func ParseLines(response string) []Line {
	source := []byte(response)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var lines []Line
	var current Line
	flush := func() {
		if len(current.Segments) > 0 {
			lines = append(lines, current)
			current = Line{}
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if !entering {
				break
			}
			if seg := string(node.Segment.Value(source)); seg != "" {
				current.Segments = append(current.Segments, Segment{
					Text: seg,
					Bold: insideBold(node),
				})
			}
			if node.SoftLineBreak() || node.HardLineBreak() {
				flush()
			}
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading, *ast.ListItem:
			if !entering {
				flush()
			}
		}
		return ast.WalkContinue, nil
	})
	flush()
	return lines
}

// insideBold reports whether the node sits under a strong emphasis span.
func insideBold(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if em, ok := p.(*ast.Emphasis); ok && em.Level >= 2 {
			return true
		}
	}
	return false
}
