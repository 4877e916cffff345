package encode

import (
	"io"
	"strings"

	"github.com/signadot/toxml/debug"
	"github.com/signadot/toxml/ir"
)

// writeAttribute writes the attribute entry key of an open tag. A sequence
// repeats the attribute; the transform sees each item.
func writeAttribute(key string, node *ir.Node, w io.Writer, es *EncState) error {
	if ir.Classify(node) == ir.KindSequence {
		for _, item := range node.Values {
			if err := writeAttribute(key, item, w, es); err != nil {
				return err
			}
		}
		return nil
	}
	return writeAttributeValue(key, es.apply(key, node), w, es)
}

func writeAttributeValue(key string, node *ir.Node, w io.Writer, es *EncState) error {
	name := strings.TrimPrefix(key, ir.AttributePrefix)
	switch ir.Classify(node) {
	case ir.KindAbsent:
		return nil
	case ir.KindSequence:
		for _, item := range node.Values {
			if err := writeAttributeValue(key, item, w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.KindRecord:
		if name != "" {
			if debug.Encode() {
				debug.Logf("dropping record valued attribute %q: %s\n", name, debug.Node{Node: node})
			}
			return nil
		}
		// "@": {k: v, ...} is a set of attributes
		for _, c := range node.Entries() {
			if err := writeAttribute(ir.AttributePrefix+c.Key, c.Value, w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.KindNull:
		if name == "" {
			return nil
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		return writeColor(w, es, AttrNameColor, name)
	}

	text, _ := ir.Text(node)
	if err := writeString(w, " "); err != nil {
		return err
	}
	if name == "" {
		// bare: the text is written as is, eg <x checked>
		return writeColor(w, es, AttrNameColor, text)
	}
	if err := writeColor(w, es, AttrNameColor, name); err != nil {
		return err
	}
	if err := writeColor(w, es, SepColor, `="`); err != nil {
		return err
	}
	if err := writeColor(w, es, AttrValueColor, EscapeAttr(text)); err != nil {
		return err
	}
	return writeColor(w, es, SepColor, `"`)
}
