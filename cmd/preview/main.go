// Command preview renders a chunk of Markdown content to HTML for manual
// inspection, reading the content from stdin and writing HTML to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hsn0918/docsplit/internal/markdown"
)

func main() {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview: reading stdin: %v\n", err)
		os.Exit(1)
	}

	html, err := markdown.RenderHTML(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview: rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(html)
}
