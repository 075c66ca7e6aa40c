package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auto_blog_generator/generator"
)

type stubLLM struct {
	outputs []string
	failAt  int
	calls   int
}

func (s *stubLLM) Complete(_ context.Context, _ generator.Prompt) (string, error) {
	s.calls++
	if s.failAt == s.calls {
		return "", fmt.Errorf("%w: upstream boom", generator.ErrModelUnavailable)
	}
	return s.outputs[s.calls-1], nil
}

func newTestServer(t *testing.T, stub *stubLLM) http.Handler {
	t.Helper()
	pipeline, err := generator.NewPipeline(stub)
	require.NoError(t, err)
	srv, err := New(pipeline)
	require.NoError(t, err)
	return srv.Routes()
}

func TestCreateBlog(t *testing.T) {
	stub := &stubLLM{outputs: []string{
		"# The Future of Autonomous Intelligence",
		"## Introduction\n...",
	}}
	handler := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"topic":"Agentic AI"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Data struct {
			Topic string         `json:"topic"`
			Blog  generator.Blog `json:"blog"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Agentic AI", resp.Data.Topic)
	assert.Equal(t, "# The Future of Autonomous Intelligence", resp.Data.Blog.Title)
	assert.Equal(t, "## Introduction\n...", resp.Data.Blog.Content)
	assert.Equal(t, 2, stub.calls)
}

func TestCreateBlogBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty topic", body: `{"topic":""}`},
		{name: "missing topic", body: `{}`},
		{name: "malformed json", body: `{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubLLM{}
			handler := newTestServer(t, stub)

			req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, stub.calls, "invalid input must not reach the model")

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestCreateBlogModelFailure(t *testing.T) {
	tests := []struct {
		name   string
		failAt int
	}{
		{name: "title call fails", failAt: 1},
		{name: "content call fails", failAt: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubLLM{outputs: []string{"# Title", "## Body"}, failAt: tc.failAt}
			handler := newTestServer(t, stub)

			req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"topic":"Agentic AI"}`))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.NotContains(t, rec.Body.String(), "# Title", "error body must not leak partial content")

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "blog generation failed", resp.Message)
		})
	}
}

func TestCreateBlogMethodNotAllowed(t *testing.T) {
	handler := newTestServer(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
