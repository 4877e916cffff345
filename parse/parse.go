package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/toxml/debug"
	"github.com/signadot/toxml/format"
	"github.com/signadot/toxml/ir"
)

var docSep = []byte("\n---\n")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	f := pOpts.format
	if f.IsAuto() {
		f = Detect(d)
	}
	var (
		res *ir.Node
		err error
	)
	switch {
	case f.IsJSON():
		res, err = parseJSON(d)
		if err != nil && pOpts.format.IsAuto() {
			// flow style YAML also starts with '{' or '['
			if yRes, yErr := parseYAML(d); yErr == nil {
				res, err, f = yRes, nil, format.YAMLFormat
			}
		}
	default:
		res, err = parseYAML(d)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %s\n", f, debug.Node{Node: res})
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseDocuments parses a stream of documents: YAML documents separated by
// "---" lines or a sequence of JSON values.
func ParseDocuments(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	f := pOpts.format
	if f.IsAuto() {
		f = Detect(d)
	}
	if !f.IsJSON() {
		return parseYAMLDocuments(d)
	}
	res, err := parseJSONStream(d)
	if err == nil || !pOpts.format.IsAuto() {
		return res, err
	}
	yRes, yErr := parseYAMLDocuments(d)
	if yErr != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("json stream failed, parsed as yaml: %v\n", err)
	}
	return yRes, nil
}

func parseYAMLDocuments(d []byte) ([]*ir.Node, error) {
	d = bytes.TrimPrefix(d, docSep[1:])
	var res []*ir.Node
	for i, doc := range bytes.Split(d, docSep) {
		node, err := parseYAML(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, node)
	}
	return res, nil
}

// Detect guesses the format of d: JSON if it starts with an object or an
// array, YAML otherwise.
func Detect(d []byte) format.Format {
	d = bytes.TrimLeft(d, " \t\r\n")
	if len(d) > 0 && (d[0] == '{' || d[0] == '[') {
		return format.JSONFormat
	}
	return format.YAMLFormat
}
