// Package parse parses JSON and YAML text into IR nodes, keeping record key
// order (and duplicate keys) as written.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"a": {"@b": "B"}}`))
//	if err != nil {
//	    return err
//	}
//
//	// force a format
//	node, err = parse.Parse(data, parse.ParseYAML())
//
//	// several documents separated by "---" lines (YAML) or concatenated
//	// values (JSON)
//	docs, err := parse.ParseDocuments(data)
//
// Without a format option, input whose first non-space byte is '{' or '['
// is read as JSON and anything else as YAML.
//
// # Related Packages
//
//   - github.com/signadot/toxml/ir - IR representation
//   - github.com/signadot/toxml/encode - Encode IR as XML
package parse
