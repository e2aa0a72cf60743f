package io

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/flowbox/pkg/errors"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// ImportFile loads a workflow from path, inferring the format from its
// extension.
func ImportFile(path string) (*workflow.Workflow, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// ReadFile reads a document from disk. A missing file yields an error with
// code FILE_NOT_FOUND.
func ReadFile(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// Read decodes a workflow document in the given format from r.
func Read(r io.Reader, format Format) (*workflow.Workflow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	return Parse(data, format)
}

// ReadJSON decodes a JSON workflow document from r.
func ReadJSON(r io.Reader) (*workflow.Workflow, error) { return Read(r, FormatJSON) }

// ReadYAML decodes a YAML workflow document from r.
func ReadYAML(r io.Reader) (*workflow.Workflow, error) { return Read(r, FormatYAML) }

// ReadTOML decodes a TOML workflow document from r.
func ReadTOML(r io.Reader) (*workflow.Workflow, error) { return Read(r, FormatTOML) }

// Parse decodes and validates a workflow document held in memory.
func Parse(data []byte, format Format) (*workflow.Workflow, error) {
	w, _, err := Decode(data, format)
	return w, err
}

// Decode is [Parse] that also returns the canonical JSON form of the
// document, suitable for content hashing.
//
// The document is first decoded generically, normalized to JSON and checked
// against the document schema, so all three formats share the same
// validation rules and error messages.
func Decode(data []byte, format Format) (*workflow.Workflow, []byte, error) {
	canonical, err := Canonicalize(data, format)
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocument(canonical); err != nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidDocument, "invalid workflow document: %s", schemaMessage(err))
	}

	var d document
	if err := json.Unmarshal(canonical, &d); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid workflow document")
	}
	return d.toWorkflow(), canonical, nil
}

// Canonicalize decodes data in the given format and re-encodes it as
// compact JSON with object keys sorted.
func Canonicalize(data []byte, format Format) ([]byte, error) {
	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "malformed JSON")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "malformed YAML")
		}
	case FormatTOML:
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "malformed TOML")
		}
		raw = m
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format %q", format)
	}

	if raw == nil {
		raw = map[string]any{}
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "document cannot be represented as JSON")
	}
	return out, nil
}
