package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/flowbox/pkg/errors"
)

// Format identifies a document syntax.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formatAliases = map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"toml": FormatTOML,
}

// ParseFormat converts a format name such as "yaml" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported input format %q (must be json, yaml or toml)", name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}
