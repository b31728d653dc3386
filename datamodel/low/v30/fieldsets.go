package v30

import (
	"slices"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
)

// FieldSet returns the field table of the OpenAPI 3.0 object type called
// object, for use with [low.Classify] and [low.ExtractUnknownFields].
func FieldSet(object string) (low.FieldSet, bool) {
	fs, ok := fieldSets()[object]
	return fs, ok
}

// ObjectNames returns the names of all OpenAPI 3.0 object types, sorted.
func ObjectNames() []string {
	sets := fieldSets()
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func fieldSets() map[string]low.FieldSet {
	all := []low.FieldSet{
		openAPIFields, infoFields, contactFields, licenseFields, serverFields,
		serverVariableFields, componentsFields, pathsFields, pathItemFields,
		operationFields, externalDocumentationFields, parameterFields,
		requestBodyFields, mediaTypeFields, encodingFields, responsesFields,
		responseFields, callbackFields, exampleFields, linkFields, headerFields,
		tagFields, referenceFields, schemaFields, discriminatorFields, xmlFields,
		securitySchemeFields, oauthFlowsFields, oauthFlowFields,
		securityRequirementFields,
	}
	sets := make(map[string]low.FieldSet, len(all))
	for _, fs := range all {
		sets[fs.Name()] = fs
	}
	return sets
}
