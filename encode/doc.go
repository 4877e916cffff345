// Package encode renders IR nodes as XML text.
//
// A record's keys decide what each entry becomes:
//
//   - "@name" is an attribute, "@" alone a bare attribute or a set of them
//   - "#" splices its value into the enclosing element
//   - "!" is a comment or doctype, written as <!...>
//   - "?" is a processing instruction, written as <?...?>
//   - anything else is a child element
//
// A sequence repeats the element (or attribute) for each item. Null gives an
// empty element or a boolean attribute and Absent is skipped.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    ir.KV("?", ir.FromString("xml version=\"1.0\"")),
//	    ir.KV("doc", ir.FromKeyVals([]ir.KeyVal{
//	        ir.KV("@lang", ir.FromString("en")),
//	        ir.KV("p", ir.FromString("hello")),
//	    })),
//	})
//	s := encode.Render(node, encode.Indent(2))
//
//	// native values
//	s = encode.MustString(ir.Ordered{}.Set("a", 1))
//
// # Related Packages
//
//   - github.com/signadot/toxml/ir - IR representation
//   - github.com/signadot/toxml/parse - JSON and YAML to IR
//   - github.com/signadot/toxml/transform - expression based transforms
package encode
