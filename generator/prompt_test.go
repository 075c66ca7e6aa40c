package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTitlePrompt(t *testing.T) {
	p := BuildTitlePrompt("Agentic AI")
	assert.Contains(t, p.System, "SEO friendly")
	assert.Equal(t, "Topic: Agentic AI", p.User)
}

func TestBuildContentPrompt(t *testing.T) {
	p := BuildContentPrompt("Agentic AI")
	assert.Contains(t, p.System, "Markdown formatting")
	assert.Equal(t, "Topic: Agentic AI", p.User)
}

func TestBlogStateExtension(t *testing.T) {
	base := NewBlogState("Agentic AI")
	withTitle := base.WithTitle("# Title")

	assert.Empty(t, base.Title, "extension must not mutate the original state")
	assert.Equal(t, "Agentic AI", withTitle.Topic)

	done := withTitle.WithContent("## Body")
	assert.Equal(t, Blog{Title: "# Title", Content: "## Body"}, done.Blog())
}
