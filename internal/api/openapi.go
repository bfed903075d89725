// Package api serves the OpenAPI description and documentation UI.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPISpec []byte

// GetSwagger returns the parsed OpenAPI specification for the ledger API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("loading embedded OpenAPI spec: %w", err)
	}
	return spec, nil
}
