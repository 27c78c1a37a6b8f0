package xrt

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec decodes a settings document.
type Codec interface {
	Decode(data []byte, s *Settings) error
	Format() string
}

// JSONCodec decodes JSON settings. With Strict set, unknown keys are an
// error, which catches misspelled setting names.
type JSONCodec struct {
	Strict bool
}

// Decode implements Codec.
func (c JSONCodec) Decode(data []byte, s *Settings) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(s)
}

// Format implements Codec.
func (JSONCodec) Format() string { return "json" }

// YAMLCodec decodes YAML settings. An empty document decodes to empty
// Settings. With Strict set, unknown keys are an error.
type YAMLCodec struct {
	Strict bool
}

// Decode implements Codec.
func (c YAMLCodec) Decode(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(c.Strict)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Format implements Codec.
func (YAMLCodec) Format() string { return "yaml" }

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
)

// CodecFor picks a codec from a file name's extension. Names ending in
// .yaml or .yml decode as YAML; anything else decodes as JSON.
func CodecFor(name string) Codec {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return JSONCodec{}
	}
}
