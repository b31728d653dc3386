// Package v30 builds source-fidelity records for OpenAPI 3.0.x documents.
//
// There is one record type and one BuildX function per OpenAPI 3.0 object.
// Every record keeps the node it was built from in RootNode and one
// [low.FieldSource] per declared field; a nil field means the key was absent.
// Builders never fail: a node of the wrong shape is returned as the invalid
// arm of [low.Result].
//
//	var doc yaml.Node
//	_ = yaml.Unmarshal(src, &doc)
//	res := v30.BuildOpenAPI(doc.Content[0], low.NewContext())
//	if api, ok := res.Get(); ok && api.Info != nil {
//		if info, ok := api.Info.Value.Get(); ok && info.Title != nil {
//			fmt.Println(info.Title.Value, info.Title.ValueNode.Line)
//		}
//	}
//
// Fields that may hold a Reference Object use the XOrReference unions, built
// by the BuildXOrReference functions. Use [FieldSet] with
// [low.ExtractUnknownFields] to list keys a given object does not define.
package v30
