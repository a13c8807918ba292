// Package openapi wires the huma API surface and renders its OpenAPI 3.1
// document without a running server.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/phone-spec-scraper/internal/api/handlers"
)

// Title is the API title published in the document.
const Title = "Phone Spec Scraper API"

// Handlers holds the dependencies behind each route group. Nil values are
// allowed when only the document is needed.
type Handlers struct {
	Pipeline handlers.Pipeline
	Sheets   handlers.SheetsProvider
	Refresh  handlers.RefreshRunner
	Jobs     handlers.JobsProvider
}

// NewAPI mounts a huma API on e.
func NewAPI(e *echo.Echo, version string) huma.API {
	return humaecho.New(e, huma.DefaultConfig(Title, version))
}

// Register adds every operation to api.
func Register(api huma.API, h Handlers) {
	handlers.RegisterPipelineRoutes(api, handlers.NewPipelineHandler(h.Pipeline))
	handlers.RegisterSheetRoutes(api, handlers.NewSheetsHandler(h.Sheets))
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(h.Refresh))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(h.Jobs))
}

// Document returns the OpenAPI document for every registered operation.
func Document(version string) *huma.OpenAPI {
	api := NewAPI(echo.New(), version)
	Register(api, Handlers{})
	return api.OpenAPI()
}

// Write encodes doc to w as "json" or "yaml".
func Write(w io.Writer, doc *huma.OpenAPI, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "json", "":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml", "yml":
		data, err = doc.YAML()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding openapi document: %w", err)
	}
	_, err = w.Write(data)
	return err
}
