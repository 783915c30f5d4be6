// Package markdown uses goldmark's AST to report whether content contains
// a Markdown table, and to render a parent block back to HTML for the
// cmd/preview diagnostic. The splitter's table-mode pipeline does not call
// it.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// HasTable reports whether content parses to an AST containing at least one
// Markdown table node. goldmark's table extension requires the separator
// row's cell count to match the header's, so this is stricter than the
// splitter's own line-oriented header/separator-row scan, which does not
// consult it.
func HasTable(content string) bool {
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	found := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*east.Table); ok {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// RenderHTML renders content to HTML using goldmark's default renderer, for
// use by diagnostic tooling that wants to eyeball a parent block's structure.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
