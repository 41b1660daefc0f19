package services

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const digestRuneLimit = 160

// extractGuideTitle returns the first level-1 heading of the generated
// markdown, or "" when the guide has none.
func extractGuideTitle(markdown string) string {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = string(heading.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

// extractGuideDigest returns the first paragraph of the generated markdown,
// clipped, for use in the run manifest.
func extractGuideDigest(markdown string) string {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var digest string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if para, ok := n.(*ast.Paragraph); ok {
			digest = string(para.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	digest = strings.Join(strings.Fields(digest), " ")
	runes := []rune(digest)
	if len(runes) > digestRuneLimit {
		digest = string(runes[:digestRuneLimit])
	}
	return digest
}
