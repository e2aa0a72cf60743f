package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/flowbox/pkg/cache"
	ferrors "github.com/matzehuels/flowbox/pkg/errors"
	flowio "github.com/matzehuels/flowbox/pkg/io"
	"github.com/matzehuels/flowbox/pkg/pipeline"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

var contentTypes = map[string]string{
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender renders the posted document. The input syntax comes from
// the "input" query parameter and defaults to JSON.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format, detailed, err := renderParams(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	input := flowio.FormatJSON
	if name := q.Get("input"); name != "" {
		if input, err = flowio.ParseFormat(name); err != nil {
			writeErr(w, err)
			return
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large", string(ferrors.ErrCodeInvalidInput))
			return
		}
		writeError(w, http.StatusBadRequest, "read body: "+err.Error(), string(ferrors.ErrCodeInvalidInput))
		return
	}

	opts := pipeline.Options{
		Input:       body,
		InputFormat: input,
		Formats:     []string{format},
		Detailed:    detailed,
		MaxCells:    s.deps.MaxCells,
		Logger:      s.deps.Logger.With("id", RequestIDFromContext(r.Context())),
	}
	res, err := s.deps.Runner.Execute(r.Context(), opts)
	if err != nil {
		writeErr(w, err)
		return
	}

	cacheStatus := "MISS"
	if res.CacheInfo.RenderHit {
		cacheStatus = "HIT"
	}
	etag := strconv.Quote(cache.ArtifactKey(res.DocumentHash, opts.ArtifactKeyOpts(format)))
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeArtifact(w, format, res.Artifacts[format])
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	format, detailed, err := renderParams(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := pipeline.Render(workflow.Sample(), format, detailed)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeArtifact(w, format, data)
}

// etagMatches reports whether an If-None-Match header value matches etag.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func renderParams(r *http.Request) (format string, detailed bool, err error) {
	q := r.URL.Query()
	format = q.Get("format")
	if format == "" {
		format = pipeline.DefaultFormat
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return "", false, err
	}
	if v := q.Get("detailed"); v != "" {
		detailed, err = strconv.ParseBool(v)
		if err != nil {
			return "", false, ferrors.New(ferrors.ErrCodeInvalidInput, "invalid detailed value %q", v)
		}
	}
	return format, detailed, nil
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg, code string) {
	body := map[string]string{"error": msg}
	if code != "" {
		body["code"] = code
	}
	writeJSON(w, status, body)
}

// writeErr maps a coded error to its HTTP status.
func writeErr(w http.ResponseWriter, err error) {
	code := ferrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case ferrors.ErrCodeInvalidInput, ferrors.ErrCodeInvalidFormat, ferrors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case ferrors.ErrCodeInvalidDocument:
		status = http.StatusUnprocessableEntity
	case ferrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case "":
		code = ferrors.ErrCodeInternal
	}
	writeError(w, status, ferrors.UserMessage(err), string(code))
}
