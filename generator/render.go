package generator

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderHTML converts generated markdown to HTML for the CLI --html output.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
