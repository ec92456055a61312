// Where: internal/descriptor/renderer.go
// What: Render the two-stage build descriptor from a bake spec.
// Why: Keep Dockerfile layout in a template instead of string concatenation.
package descriptor

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/modelbake/modelbake/internal/model"
)

// ArtifactRoot is the directory inside the image that holds all model
// artifacts, one subdirectory per model.
const ArtifactRoot = "/models"

// HubTokenSecretID names the build secret carrying the hub token.
const HubTokenSecretID = "hf_token"

// Default digest-pinned base images. The download stage needs pip to
// install the hub client; the package stage only needs a shell for chmod
// and ls.
const (
	DefaultDownloaderImage = "python:3.11-slim@sha256:9c85d1d49df54abca1c5db3b4016400e198e9e9bb699f32f1ef8e5c0c2149ccf"
	DefaultRuntimeImage    = "alpine:3.20@sha256:de4fe7064d8f98419ea6b49190df1abbf43450c1702eeb864fe9ced453c1cc5f"
)

// Spec describes one bake: the models to fetch and the images involved.
type Spec struct {
	Models          []model.Ref
	Image           string
	DownloaderImage string
	RuntimeImage    string
	WithHubToken    bool
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type modelContext struct {
	Ref      string
	Dir      string
	LabelKey string
}

type descriptorContext struct {
	DownloaderImage string
	RuntimeImage    string
	ArtifactRoot    string
	SecretID        string
	WithHubToken    bool
	Models          []modelContext
}

// Render produces the descriptor content for the spec. Every model in the
// input sequence yields exactly one download instruction and one label, in
// input order. Empty model entries are rejected here, before any engine
// command runs.
func Render(spec Spec) (string, error) {
	if len(spec.Models) == 0 {
		return "", fmt.Errorf("descriptor: no models to bake")
	}
	for i, ref := range spec.Models {
		if ref.Empty() {
			return "", fmt.Errorf("descriptor: model list entry %d is empty", i+1)
		}
	}

	data := descriptorContext{
		DownloaderImage: spec.DownloaderImage,
		RuntimeImage:    spec.RuntimeImage,
		ArtifactRoot:    ArtifactRoot,
		SecretID:        HubTokenSecretID,
		WithHubToken:    spec.WithHubToken,
	}
	if data.DownloaderImage == "" {
		data.DownloaderImage = DefaultDownloaderImage
	}
	if data.RuntimeImage == "" {
		data.RuntimeImage = DefaultRuntimeImage
	}
	for _, ref := range spec.Models {
		data.Models = append(data.Models, modelContext{
			Ref:      ref.String(),
			Dir:      ref.Dir(),
			LabelKey: ref.LabelKey(),
		})
	}

	return renderTemplate("dockerfile.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
