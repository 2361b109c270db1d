// Package docs отдает описание API в формате OpenAPI.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var specYAML []byte

// Docs хранит описание API в YAML и JSON
type Docs struct {
	yaml   []byte
	json   []byte
	logger *zap.Logger
}

// New разбирает встроенный документ и готовит его JSON-представление
func New(logger *zap.Logger) (*Docs, error) {
	jsonSpec, err := toJSON(specYAML)
	if err != nil {
		return nil, err
	}

	return &Docs{
		yaml:   specYAML,
		json:   jsonSpec,
		logger: logger,
	}, nil
}

func toJSON(data []byte) ([]byte, error) {
	var document map[string]any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}

	result, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}

	return result, nil
}

// YAML обрабатывает GET /v1/openapi.yaml
func (d *Docs) YAML(w http.ResponseWriter, r *http.Request) {
	d.write(w, "application/yaml", d.yaml)
}

// JSON обрабатывает GET /v1/openapi.json
func (d *Docs) JSON(w http.ResponseWriter, r *http.Request) {
	d.write(w, "application/json", d.json)
}

func (d *Docs) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		d.logger.Debug("failed to write openapi document", zap.Error(err))
	}
}
