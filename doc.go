// Package openapitools is the root of a low-level OpenAPI 3.0 and 3.1
// document model for Go.
//
// The model turns a go.yaml.in/yaml/v4 node tree into typed records that
// keep every source node, so each value can be traced back to the key and
// value it came from, with line and column. Nothing is validated and nothing
// is dropped: a node with the wrong shape is kept in its invalid form, and
// keys the model does not declare can be listed on demand.
//
// # Packages
//
//   - datamodel/low: the version-independent core (source wrappers, results,
//     classification, value decoding, generic builders and collections)
//   - datamodel/low/v30: OpenAPI 3.0.x object builders
//   - datamodel/low/v31: OpenAPI 3.1.x object builders, including JSON Schema
//     2020-12 keywords and boolean schemas
//   - parser: composes YAML or JSON text, routes it by version and collects
//     located issues
//   - oaserrors: structured errors for the parser
//
// # Quick Start
//
//	import "github.com/jentic/jentic-openapi-tools-sub001/parser"
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Is30() {
//		info, _ := result.OAS30.Info.Value.Get()
//		fmt.Println(info.Title.Value)
//	}
//
// Builders can also be used directly on any node:
//
//	import "github.com/jentic/jentic-openapi-tools-sub001/datamodel/low/v31"
//
//	schema := v31.BuildSchemaOrReference(node, nil)
//	if schema.IsReference() {
//		fmt.Println(schema.Reference.Ref.Value)
//	}
package openapitools
