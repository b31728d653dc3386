// Package v31 builds source-fidelity records for OpenAPI 3.1.x documents.
//
// The package mirrors v30 with its own records and field tables. The
// differences follow the 3.1 specification: the root object gains
// jsonSchemaDialect and webhooks, Info gains summary, License gains
// identifier, Components gains pathItems, a Reference may carry summary and
// description, and Discriminator accepts extensions.
//
// Schema follows JSON Schema 2020-12. Every subschema position is a
// [NestedSchema], which holds either a boolean schema or a SchemaOrReference:
//
//	res := v31.BuildSchema(node, low.NewContext())
//	if s, ok := res.Get(); ok && s.Items != nil {
//		if items := s.Items.Value; items.IsBool() {
//			fmt.Println("items:", *items.Bool)
//		} else if items.Other.IsObject() {
//			fmt.Println("items type:", items.Other.Object.Type.Value)
//		}
//	}
package v31
