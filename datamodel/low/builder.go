package low

import "go.yaml.in/yaml/v4"

// BuildModel is the generic object builder behind every BuildX function.
//
// A node that is not a mapping yields the invalid arm. Otherwise newRecord
// allocates the record for node and every key is routed by its class:
// declared keys through their table rule, extension keys into the
// record's Extensions, and patterned keys through the pattern rule.
// Unknown keys are left off the record and reported. An alias past the
// context's expansion budget yields the invalid arm with a nil value.
func BuildModel[T any](node *yaml.Node, ctx *Context, fields *Fields[T], newRecord func(root *yaml.Node) *T) Result[*T] {
	if !ctx.expand(node) {
		return unexpanded[*T](node)
	}
	if !IsMapping(node) {
		return Mismatch[*T](node, ctx, fields.name)
	}
	rec := newRecord(node)

	var ext Extensions
	if fields.ExtensionBearing() {
		ext = Extensions{}
	}
	for _, p := range Pairs(node) {
		key, class := ClassifyKey(fields, p.Key, ctx)
		switch class {
		case KeyDeclared:
			fields.apply(rec, p.Key, p.Value, key, ctx)
		case KeyExtension:
			ext = append(ext, Entry[ValueSource[any]]{
				Key:   KeySource[string]{Value: key, KeyNode: p.Key},
				Value: BuildValue(p.Value, ctx),
			})
		case KeyPatterned:
			fields.pattern.add(rec, KeySource[string]{Value: key, KeyNode: p.Key}, p.Value, ctx)
		default:
			reportUnknown(fields, key, p.Key, ctx)
		}
	}
	if fields.ExtensionBearing() {
		fields.extensions(rec, ext)
	}
	return Valid(rec)
}

func reportUnknown[T any](fields *Fields[T], key string, keyNode *yaml.Node, ctx *Context) {
	kind := ReportUnknownField
	msg := "unknown field"
	if fields.HasPattern() {
		kind = ReportDroppedKey
		msg = "dropped key"
	}
	ctx.report(Report{Kind: kind, Object: fields.name, Key: key, Node: keyNode})
	ctx.logger().Debug(msg, "object", fields.name, "key", key, "line", lineOf(keyNode), "column", columnOf(keyNode))
}
