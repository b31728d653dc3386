package v30

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jentic/jentic-openapi-tools-sub001/datamodel/low"
	"github.com/jentic/jentic-openapi-tools-sub001/internal/testutil"
)

func TestBuildPaths_KeyFiltering(t *testing.T) {
	node := testutil.Compose(t, `
		/pets:
		  get: {}
		pets:
		  get: {}
		404: {}
		x-internal: true
		/pets/{id}:
		  $ref: '#/x'
	`)
	var reports []low.Report
	ctx := low.NewContext(low.WithReporter(low.ReporterFunc(func(r low.Report) { reports = append(reports, r) })))

	paths, ok := BuildPaths(node, ctx).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"/pets", "/pets/{id}"}, paths.Paths.Keys())
	assert.Equal(t, []string{"x-internal"}, paths.Extensions.Keys())

	item, _ := paths.Paths.Get("/pets/{id}")
	require.True(t, item.IsValid())
	assert.Equal(t, "#/x", item.Object.Ref.Value, "path item $ref is a plain field")

	fs, _ := FieldSet("Paths")
	assert.Equal(t, []string{"pets", "404"}, low.ExtractUnknownFields(node, fs, nil).Keys())

	require.Len(t, reports, 2)
	assert.Equal(t, low.ReportDroppedKey, reports[0].Kind)
	assert.Equal(t, "pets", reports[0].Key)
	assert.Equal(t, "404", reports[1].Key)
}

func TestBuildPaths_Empty(t *testing.T) {
	paths, ok := BuildPaths(testutil.Compose(t, `{}`), nil).Get()
	require.True(t, ok)
	assert.NotNil(t, paths.Paths)
	assert.Equal(t, 0, paths.Paths.Len())
}

func TestBuildPathItem_Operations(t *testing.T) {
	node := testutil.Compose(t, `
		summary: Pets
		get: {operationId: a}
		put: {operationId: b}
		post: {operationId: c}
		delete: {operationId: d}
		options: {operationId: e}
		head: {operationId: f}
		patch: {operationId: g}
		trace: {operationId: h}
		servers:
		  - url: /v2
		parameters:
		  - $ref: '#/components/parameters/id'
	`)
	item, ok := BuildPathItem(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "Pets", item.Summary.Value)

	ops := []*low.FieldSource[low.Result[*Operation]]{
		item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace,
	}
	for i, want := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		require.NotNil(t, ops[i])
		op, ok := ops[i].Value.Get()
		require.True(t, ok)
		assert.Equal(t, want, op.OperationID.Value)
	}

	servers, ok := item.Servers.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "/v2", servers[0].Object.URL.Value)

	params, ok := item.Parameters.Value.Get()
	require.True(t, ok)
	assert.True(t, params[0].IsReference())
}

func TestBuildOperation(t *testing.T) {
	node := testutil.Compose(t, `
		operationId: createPet
		deprecated: true
		externalDocs:
		  url: https://docs
		requestBody:
		  required: true
		  content:
		    application/json:
		      schema: {$ref: '#/components/schemas/Pet'}
		      encoding:
		        photo:
		          contentType: image/png
		          headers:
		            X-Rate: {schema: {type: integer}}
		responses:
		  '201': {description: created}
		callbacks:
		  onEvent:
		    '{$request.body#/url}':
		      post:
		        responses:
		          '200': {description: ok}
		  reused:
		    $ref: '#/components/callbacks/Other'
	`)
	op, ok := BuildOperation(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, true, op.Deprecated.Value)

	docs, ok := op.ExternalDocs.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://docs", docs.URL.Value)

	body := op.RequestBody.Value
	require.True(t, body.IsObject())
	assert.Equal(t, true, body.Object.Required.Value)
	content, ok := body.Object.Content.Value.Get()
	require.True(t, ok)
	mt, _ := content.Get("application/json")
	require.True(t, mt.IsValid())
	assert.True(t, mt.Object.Schema.Value.IsReference())

	enc, ok := mt.Object.Encoding.Value.Get()
	require.True(t, ok)
	photo, _ := enc.Get("photo")
	assert.Equal(t, "image/png", photo.Object.ContentType.Value)
	headers, ok := photo.Object.Headers.Value.Get()
	require.True(t, ok)
	rate, _ := headers.Get("X-Rate")
	require.True(t, rate.IsObject())
	assert.Equal(t, "integer", rate.Object.Schema.Value.Object.Type.Value)

	callbacks, ok := op.Callbacks.Value.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"onEvent", "reused"}, callbacks.Keys())

	onEvent, _ := callbacks.Get("onEvent")
	require.True(t, onEvent.IsObject())
	assert.Equal(t, []string{"{$request.body#/url}"}, onEvent.Object.Expressions.Keys())
	expr, _ := onEvent.Object.Expressions.Get("{$request.body#/url}")
	require.True(t, expr.IsValid())
	post, ok := expr.Object.Post.Value.Get()
	require.True(t, ok)
	responses, ok := post.Responses.Value.Get()
	require.True(t, ok)
	assert.True(t, responses.Responses.Has("200"))

	reused, _ := callbacks.Get("reused")
	assert.True(t, reused.IsReference())
}

func TestBuildResponses(t *testing.T) {
	node := testutil.Compose(t, `
		default:
		  description: error
		200:
		  description: ok
		2XX:
		  $ref: '#/components/responses/Success'
		x-trace: on
	`)
	responses, ok := BuildResponses(node, nil).Get()
	require.True(t, ok)

	require.NotNil(t, responses.Default)
	require.True(t, responses.Default.Value.IsObject())
	assert.Equal(t, "error", responses.Default.Value.Object.Description.Value)

	assert.Equal(t, []string{"200", "2XX"}, responses.Responses.Keys())
	ok200, _ := responses.Responses.Get("200")
	assert.Equal(t, "ok", ok200.Object.Description.Value)
	twoXX, _ := responses.Responses.Get("2XX")
	assert.True(t, twoXX.IsReference())

	assert.Equal(t, []string{"x-trace"}, responses.Extensions.Keys())

	fs, _ := FieldSet("Responses")
	assert.Empty(t, low.ExtractUnknownFields(node, fs, nil))
}

func TestBuildResponse(t *testing.T) {
	node := testutil.Compose(t, `
		description: A pet
		headers:
		  X-Rate-Limit:
		    description: calls per hour
		    schema: {type: integer}
		  X-Ref:
		    $ref: '#/components/headers/X'
		links:
		  GetOwner:
		    operationId: getOwner
		    parameters:
		      id: $response.body#/ownerId
		    requestBody: {a: 1}
		    server:
		      url: https://owners
	`)
	resp, ok := BuildResponse(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, "A pet", resp.Description.Value)

	headers, ok := resp.Headers.Value.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"X-Rate-Limit", "X-Ref"}, headers.Keys())
	xref, _ := headers.Get("X-Ref")
	assert.True(t, xref.IsReference())

	links, ok := resp.Links.Value.Get()
	require.True(t, ok)
	owner, _ := links.Get("GetOwner")
	require.True(t, owner.IsObject())
	assert.Equal(t, "getOwner", owner.Object.OperationID.Value)
	params, ok := owner.Object.Parameters.Value.Get()
	require.True(t, ok)
	id, _ := params.Get("id")
	assert.Equal(t, "$response.body#/ownerId", id.Value)
	assert.Equal(t, map[string]any{"a": 1}, owner.Object.RequestBody.Value)
	server, ok := owner.Object.Server.Value.Get()
	require.True(t, ok)
	assert.Equal(t, "https://owners", server.URL.Value)
}

func TestBuildCallback_ExtensionsAreNotExpressions(t *testing.T) {
	node := testutil.Compose(t, `
		'{$request.query.url}': {}
		x-meta: 1
	`)
	cb, ok := BuildCallback(node, nil).Get()
	require.True(t, ok)
	assert.Equal(t, []string{"{$request.query.url}"}, cb.Expressions.Keys())
	assert.Equal(t, []string{"x-meta"}, cb.Extensions.Keys())
}
