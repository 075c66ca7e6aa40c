package generator

// BlogState carries the topic through the pipeline. Steps extend it by
// value copy; the topic itself is never rewritten after creation.
type BlogState struct {
	Topic   string
	Title   string
	Content string
}

// NewBlogState starts a run with only the topic populated.
func NewBlogState(topic string) BlogState {
	return BlogState{Topic: topic}
}

// WithTitle returns a copy of the state with the title filled in.
func (s BlogState) WithTitle(title string) BlogState {
	s.Title = title
	return s
}

// WithContent returns a copy of the state with the content filled in.
func (s BlogState) WithContent(content string) BlogState {
	s.Content = content
	return s
}

// Blog is the finished projection returned to callers.
type Blog struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Blog projects the final state; it carries no reference back to the run.
func (s BlogState) Blog() Blog {
	return Blog{Title: s.Title, Content: s.Content}
}
