// Package ir provides the value model rendered by toxml.
//
// # Overview
//
// A Node is a closed tagged union: the Type field says which of the other
// fields carry the value. Every input, whether parsed from JSON or YAML,
// built with the constructors here or converted from native Go values with
// FromAny, is a tree of Nodes.
//
// # Kinds
//
// Classify groups node types into the five kinds the renderer cares about:
//
//   - KindAbsent: AbsentType or a nil *Node. Renders as nothing.
//   - KindNull: NullType. An empty element when a tag name is in scope.
//   - KindScalar: StringType, NumberType, BoolType. Text content.
//   - KindSequence: ArrayType. Each item is rendered under the same name.
//   - KindRecord: ObjectType. Attributes and children of one element.
//
// # Records
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Keys are string nodes and order is significant. Keys may repeat.
//
// The key of a record entry decides its Role:
//
//   - "@name": RoleAttribute; "@" alone is the bare attribute form.
//   - "#": RoleFragment, children spliced into the enclosing element.
//   - "!": RoleComment, raw <!...> markup.
//   - "?": RoleProcessingInstruction, raw <?...?> markup.
//   - "": RoleUnnamed, the legacy fragment key.
//   - anything else: RoleChild, the key is the tag name.
//
// Entries decodes the keys of a record once so that consumers branch on
// Role rather than re-parsing prefixes.
//
// # Creating Nodes
//
//	doc := ir.FromKeyVals([]ir.KeyVal{
//	    ir.KV("?", ir.FromString(`xml version="1.0"`)),
//	    ir.KV("note", ir.FromKeyVals([]ir.KeyVal{
//	        ir.KV("@lang", ir.FromString("en")),
//	        ir.KV("to", ir.FromString("Tove")),
//	    })),
//	})
//
// or from native values, keeping order with Ordered:
//
//	doc := ir.FromAny(ir.Ordered{}.
//	    Set("note", ir.Ordered{}.Set("@lang", "en").Set("to", "Tove")))
package ir
