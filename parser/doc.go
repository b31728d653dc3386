// Package parser composes OpenAPI 3.0 and 3.1 documents and builds their
// low-level, source-preserving models.
//
// The parser reads YAML or JSON text into a go.yaml.in/yaml/v4 node tree,
// reads the root openapi field, and hands the tree to the builder for that
// version: 3.0.x documents to [v30.BuildOpenAPI] and 3.1.x documents to
// [v31.BuildOpenAPI]. Routing looks only at major.minor, so "3.0.9" and
// "3.1.0-rc1" are built too. Every other version, including Swagger 2.0 and
// 3.2, fails with a *oaserrors.UnsupportedVersionError.
//
// External references are not resolved and URLs are not fetched.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Is31() {
//		info, _ := result.OAS31.Info.Value.Get()
//		fmt.Println(info.Title.Value, "at line", info.Title.KeyNode.Line)
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.ReportUnknownFields = true
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.ParseBytes(data)
//
// # Issues
//
// Building never fails on content. A node with the wrong shape is kept in its
// invalid form and recorded as a warning in ParseResult.Issues, with the line
// and column of the offending node. With WithReportUnknownFields, keys that
// the object model does not declare are recorded as info issues as well:
//
//	result, _ := parser.ParseWithOptions(
//		parser.WithBytes(data),
//		parser.WithSourceName("users-api"),
//		parser.WithReportUnknownFields(true),
//	)
//	for _, issue := range result.Issues {
//		fmt.Println(issue.Location(), issue.Message)
//	}
//
// # Errors
//
// Errors come from the oaserrors package: *oaserrors.ParseError for text
// that cannot be composed or has no usable openapi field,
// *oaserrors.UnsupportedVersionError, *oaserrors.ResourceLimitError for
// inputs above WithMaxInputSize and *oaserrors.ConfigError for invalid
// options.
//
// # Many Documents
//
// ParseAll builds independent documents on a bounded worker pool and returns
// the results in input order:
//
//	results, err := parser.ParseAll(ctx, []parser.Source{
//		{Name: "users.yaml", Data: users},
//		{Name: "billing.yaml", Data: billing},
//	}, parser.WithConcurrency(4))
//
// # Logging
//
// WithLogger accepts any Logger; NewSlogAdapter wraps a *slog.Logger. The
// parser logs version routing and timings at debug level, and the builders
// log shape mismatches and dropped keys.
package parser
