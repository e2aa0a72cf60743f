package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowbox/pkg/cache"
	"github.com/matzehuels/flowbox/pkg/pipeline"
	"github.com/matzehuels/flowbox/pkg/render/ascii"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

const yamlDoc = `
title: T
nodes:
  - id: a
    label: Start
    type: start
  - id: b
    label: End
    type: result
connections:
  - source: a
    target: b
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newLimitedTestServer(t, 0)
}

// newLimitedTestServer starts a server with the given canvas cell limit.
func newLimitedTestServer(t *testing.T, maxCells int) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	srv := New(Deps{Runner: pipeline.NewRunner(c, logger), Logger: logger, MaxCells: maxCells})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeError(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDIsPropagated(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
}

func TestRenderText(t *testing.T) {
	ts := newTestServer(t)

	w := workflow.New("T")
	w.AddStep(&workflow.Step{ID: "a", Label: "Start", Kind: "start"})
	w.AddStep(&workflow.Step{ID: "b", Label: "End", Kind: "result"})
	w.AddEdge(&workflow.Edge{Source: "a", Target: "b"})
	want := ascii.Render(w)

	for i, wantCache := range []string{"MISS", "HIT"} {
		resp, err := http.Post(ts.URL+"/render?input=yaml", "application/yaml", strings.NewReader(yamlDoc))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
		assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, wantCache, resp.Header.Get("X-Cache"))
		assert.Equal(t, want, string(body))
	}
}

func TestRenderDOT(t *testing.T) {
	ts := newTestServer(t)

	doc := `{"nodes":[{"id":"a","label":"A"},{"id":"b","label":"B"}],"connections":[{"source":"a","target":"b"}]}`
	resp, err := http.Post(ts.URL+"/render?format=dot", "application/json", strings.NewReader(doc))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/vnd.graphviz")
	assert.Contains(t, string(body), `"a" -> "b";`)
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   string
	}{
		{"invalid document", "", `{"nodes":[{"id":"a"}]}`, http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"malformed json", "", `{`, http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"unknown format", "?format=png", `{}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown input", "?input=xml", `{}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad detailed flag", "?detailed=maybe", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/render"+tt.query, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRenderCanvasLimit(t *testing.T) {
	ts := newLimitedTestServer(t, 100)

	resp, err := http.Post(ts.URL+"/render?input=yaml", "application/yaml", strings.NewReader(yamlDoc))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INVALID_DOCUMENT", body["code"])
	assert.Contains(t, body["error"], "too large")
}

// chainDocument builds a JSON document with one very wide step at the head
// of a long chain. It is small on the wire but lays out to a huge canvas.
func chainDocument(t *testing.T, labelWidth, steps int) []byte {
	t.Helper()
	type node struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	type conn struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}
	doc := struct {
		Nodes       []node `json:"nodes"`
		Connections []conn `json:"connections"`
	}{}
	for i := range steps {
		label := "x"
		if i == 0 {
			label = strings.Repeat("w", labelWidth)
		}
		doc.Nodes = append(doc.Nodes, node{ID: fmt.Sprintf("s%d", i), Label: label})
		if i > 0 {
			doc.Connections = append(doc.Connections, conn{Source: fmt.Sprintf("s%d", i-1), Target: fmt.Sprintf("s%d", i)})
		}
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestRenderHugeCanvasRejectedByDefault(t *testing.T) {
	ts := newTestServer(t)

	data := chainDocument(t, 5000, 1000)
	require.Less(t, len(data), maxBodyBytes)

	resp, err := http.Post(ts.URL+"/render", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_DOCUMENT", decodeError(t, resp)["code"])
}

func TestRenderETag(t *testing.T) {
	ts := newTestServer(t)

	post := func(query, ifNoneMatch string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/render?input=yaml"+query, strings.NewReader(yamlDoc))
		require.NoError(t, err)
		if ifNoneMatch != "" {
			req.Header.Set("If-None-Match", ifNoneMatch)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	text := post("", "")
	dot := post("&format=dot", "")
	require.Equal(t, http.StatusOK, text.StatusCode)
	require.Equal(t, http.StatusOK, dot.StatusCode)
	etag := text.Header.Get("ETag")
	assert.NotEmpty(t, etag)
	assert.NotEqual(t, etag, dot.Header.Get("ETag"))

	resp := post("", etag)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)

	resp = post("&format=dot", etag)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRenderTooLarge(t *testing.T) {
	ts := newTestServer(t)

	big := strings.Repeat(" ", maxBodyBytes+1)
	resp, err := http.Post(ts.URL+"/render", "application/json", strings.NewReader(big))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestSample(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/sample")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ascii.Render(workflow.Sample()), string(body))
}

func TestSampleJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/sample?format=json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var layout struct {
		Title string            `json:"title"`
		Steps []json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&layout))
	assert.Equal(t, "Sample CI/CD Pipeline", layout.Title)
	assert.Len(t, layout.Steps, 8)
}

func TestNotFoundAndMethod(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/render")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestListenAndServeShutdown(t *testing.T) {
	srv := New(Deps{Logger: log.New(io.Discard)})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
