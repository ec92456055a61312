// Where: internal/manifest/manifest.go
// What: YAML bake manifest loading and validation.
// Why: Let operators keep model lists in a file instead of long argv strings.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

// Manifest carries the same inputs as the positional CLI form, plus
// optional base image overrides.
type Manifest struct {
	Models          []string `yaml:"models"`
	Image           string   `yaml:"image"`
	DownloaderImage string   `yaml:"downloader_image"`
	RuntimeImage    string   `yaml:"runtime_image"`
}

//go:embed schema/bake.schema.json
var schemaJSON []byte

const schemaURL = "modelbake://schema/bake.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Load reads, validates, and decodes a manifest file.
func Load(path string) (Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(content)
}

// Parse validates manifest content against the embedded schema and decodes
// it. Validation runs on the JSON form of the document, so YAML and JSON
// manifests are both accepted; the struct itself is decoded from the
// original document to keep field resolution in one place.
func Parse(content []byte) (Manifest, error) {
	sch, err := loadSchema()
	if err != nil {
		return Manifest{}, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return Manifest{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}

	var m Manifest
	if err := yamlv3.Unmarshal(content, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
