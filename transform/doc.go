// Package transform builds encode.Transform functions from expr-lang
// expressions.
//
// Each expression is evaluated once per entry with the environment
//
//	key    the raw record key, "@"-prefixed for attributes, "" at the root
//	name   the tag or attribute name
//	attr   whether the entry is an attribute
//	kind   one of absent, null, scalar, sequence or record
//	value  the value as plain Go data
//
// A Drop expression drops the entry when its result is truthy: true, a
// non-empty string or container, or a non-zero number. A Map
// expression yields the replacement value and only applies to scalars and
// nulls; absent() removes the entry.
//
// # Usage
//
//	p := &transform.Pipeline{}
//	if err := p.Drop(`name == "password"`); err != nil {
//	    return err
//	}
//	if err := p.Map(`attr ? lower(value) : value`); err != nil {
//	    return err
//	}
//	s := encode.Render(node, encode.WithTransform(p.Transform()))
//	if err := p.Err(); err != nil {
//	    return err
//	}
package transform
