// Package registry provides xrt.RegistryReader implementations: a YAML file
// standing in for the registry on hosts without one, and the Windows
// registry itself.
package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/xrt"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Document is the file format read by File.
//
//	keys:
//	  - root: HKLM
//	    path: SOFTWARE\Virtual Desktop, Inc.\Virtual Desktop Streamer
//	    values:
//	      Path: /opt/virtual-desktop
type Document struct {
	Keys []Key `yaml:"keys" validate:"dive"`
}

// Key is one registry key and its string values.
type Key struct {
	Root   string            `yaml:"root" validate:"required,oneof=HKLM HKCU"`
	Path   string            `yaml:"path" validate:"required"`
	Values map[string]string `yaml:"values"`
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode registry document: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid registry document: %w", err)
	}
	return &doc, nil
}

// Lookup returns a string value. Key paths and value names compare
// case-insensitively, as in the Windows registry.
func (d *Document) Lookup(root xrt.RegistryRoot, subkey, value string) (string, bool) {
	for _, key := range d.Keys {
		if key.Root != root.String() || !strings.EqualFold(key.Path, subkey) {
			continue
		}
		for name, v := range key.Values {
			if strings.EqualFold(name, value) {
				return v, true
			}
		}
	}
	return "", false
}

// File reads registry values from a YAML document on disk. The file is read
// on every lookup so edits take effect on the next bring-up.
type File struct {
	path string
}

// New creates a File reader for the given path.
func New(path string) *File {
	return &File{path: path}
}

// ReadString implements xrt.RegistryReader. A missing or invalid file reads
// as an empty registry.
func (f *File) ReadString(root xrt.RegistryRoot, subkey, value string) (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		xrt.Logger().Debug("registry file unreadable", "path", f.path, "error", err)
		return "", false
	}
	doc, err := Parse(data)
	if err != nil {
		xrt.Logger().Warn("registry file rejected", "path", f.path, "error", err)
		return "", false
	}
	return doc.Lookup(root, subkey, value)
}

var _ xrt.RegistryReader = (*File)(nil)
