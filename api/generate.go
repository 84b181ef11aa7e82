// Package api holds the OpenAPI description of the trustscore HTTP surface.
// Typed clients are generated from it with oapi-codegen.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,client -package api -o client.gen.go openapi.yaml
