package generator

import "fmt"

// Prompt is the message pair sent to the model for one completion.
type Prompt struct {
	System string
	User   string
}

// BuildTitlePrompt asks for a single SEO-friendly blog title.
func BuildTitlePrompt(topic string) Prompt {
	return Prompt{
		System: "You are an expert blog content writer. Use Markdown formatting. " +
			"Generate a single blog title for the given topic. " +
			"The title should be creative and SEO friendly. Output only the title.",
		User: fmt.Sprintf("Topic: %s", topic),
	}
}

// BuildContentPrompt asks for the markdown body. The title step runs first,
// but the body prompt is driven by the topic alone.
func BuildContentPrompt(topic string) Prompt {
	return Prompt{
		System: "You are an expert blog writer. Use Markdown formatting. " +
			"Generate detailed blog content with a detailed breakdown for the given topic.",
		User: fmt.Sprintf("Topic: %s", topic),
	}
}
