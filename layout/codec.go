package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeTOML parses a TOML layout. Unknown keys are errors.
func DecodeTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode layout: unknown key %q", undecoded[0].String())
	}
	return &doc, nil
}

// DecodeYAML parses a YAML layout. Unknown keys are errors.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &doc, nil
}

// EncodeTOML serializes doc as TOML.
func EncodeTOML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeYAML serializes doc as YAML.
func EncodeYAML(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Load reads and builds the layout at path. The decoder follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	var doc *Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		doc, err = DecodeTOML(data)
	case ".yaml", ".yml":
		doc, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("load layout %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return Build(doc)
}

// Save writes doc to path using the encoder chosen by the extension.
func Save(path string, doc *Document) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = EncodeTOML(doc)
	case ".yaml", ".yml":
		data, err = EncodeYAML(doc)
	default:
		return fmt.Errorf("save layout %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}
