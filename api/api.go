// Package api содержит OpenAPI-описание HTTP интерфейса.
package api

import _ "embed"

// OpenAPISpec - документ OpenAPI 3, отдаётся по /openapi.yml
//
//go:embed openapi.yml
var OpenAPISpec []byte
