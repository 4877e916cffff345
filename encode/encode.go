package encode

import (
	"io"
	"strings"

	"github.com/signadot/toxml/debug"
	"github.com/signadot/toxml/ir"
)

// EncState is the state of one rendering. It is created by Encode and never
// shared between calls.
type EncState struct {
	unit, prefix     string
	transform        Transform
	expandEmpty      bool
	emptyKeyFragment bool

	out *countingWriter

	Color func(ColorAttr, string) string
}

// the root value sits in fragment position: no tag name in scope.
var rootEntry = ir.Entry{Role: ir.RoleFragment}

// Encode writes node as XML to w. It only fails when w does.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	cw := &countingWriter{w: w}
	es.out = cw
	return encode(rootEntry, node, cw, es)
}

// Render returns node as an XML string.
func Render(node *ir.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	// strings.Builder never fails
	_ = Encode(node, buf, opts...)
	return buf.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeColor(w io.Writer, es *EncState, attr ColorAttr, s string) error {
	if es.Color != nil && s != "" {
		s = es.Color(attr, s)
	}
	return writeString(w, s)
}

// writeNL starts a new line at the current indentation, unless indentation
// is off or nothing has been written yet.
func writeNL(w io.Writer, es *EncState) error {
	if es.unit == "" || es.out.n == 0 {
		return nil
	}
	return writeString(w, "\n"+es.prefix)
}

func writeTag(w io.Writer, es *EncState, open, name, close string) error {
	if err := writeColor(w, es, SepColor, open); err != nil {
		return err
	}
	if err := writeColor(w, es, TagColor, name); err != nil {
		return err
	}
	return writeColor(w, es, SepColor, close)
}

func (es *EncState) apply(key string, node *ir.Node) *ir.Node {
	if es.transform == nil {
		return node
	}
	res := es.transform(key, node)
	if debug.Encode() && ir.Classify(res) == ir.KindAbsent && ir.Classify(node) != ir.KindAbsent {
		debug.Logf("transform dropped %q: %s\n", key, debug.Node{Node: node})
	}
	return res
}

// role resolves the legacy empty key. ok is false for entries which are
// dropped.
func (es *EncState) role(e ir.Entry) (ir.Role, bool) {
	if e.Role != ir.RoleUnnamed {
		return e.Role, true
	}
	return ir.RoleFragment, es.emptyKeyFragment
}

// Main encode function

func encode(e ir.Entry, node *ir.Node, w io.Writer, es *EncState) error {
	if ir.Classify(node) == ir.KindSequence {
		for _, item := range node.Values {
			if err := encode(e, item, w, es); err != nil {
				return err
			}
		}
		return nil
	}
	key := e.Key
	if e.Role == ir.RoleFragment {
		key = ""
	}
	return encodeValue(e, es.apply(key, node), w, es)
}

// encodeValue dispatches an already transformed value.
func encodeValue(e ir.Entry, node *ir.Node, w io.Writer, es *EncState) error {
	switch ir.Classify(node) {
	case ir.KindScalar:
		return encodeScalar(e, node, w, es)
	case ir.KindNull:
		return encodeNull(e, w, es)
	case ir.KindRecord:
		return encodeRecord(e, node, w, es)
	case ir.KindSequence:
		for _, item := range node.Values {
			if err := encodeValue(e, item, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeScalar(e ir.Entry, node *ir.Node, w io.Writer, es *EncState) error {
	text, _ := ir.Text(node)
	switch e.Role {
	case ir.RoleProcessingInstruction:
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColor(w, es, MarkupColor, "<?"+text+"?>")
	case ir.RoleComment:
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColor(w, es, MarkupColor, "<!"+text+">")
	case ir.RoleChild:
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeTag(w, es, "<", e.Name, ">"); err != nil {
			return err
		}
		if err := writeColor(w, es, TextColor, EscapeText(text)); err != nil {
			return err
		}
		return writeTag(w, es, "</", e.Name, ">")
	default:
		return writeColor(w, es, TextColor, EscapeText(text))
	}
}

func encodeNull(e ir.Entry, w io.Writer, es *EncState) error {
	if e.Role != ir.RoleChild {
		return nil
	}
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeTag(w, es, "<", e.Name, emptyClose(e.Name))
}

func encodeRecord(e ir.Entry, node *ir.Node, w io.Writer, es *EncState) error {
	entries := node.Entries()
	switch e.Role {
	case ir.RoleChild:
	case ir.RoleComment, ir.RoleProcessingInstruction:
		if debug.Encode() {
			debug.Logf("dropping record under %q: %s\n", e.Key, debug.Node{Node: node})
		}
		return nil
	default:
		// no tag in scope: attributes have nowhere to go
		_, err := encodeChildren(entries, false, w, es)
		return err
	}

	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeTag(w, es, "<", e.Name, ""); err != nil {
		return err
	}
	for _, c := range entries {
		if c.Role != ir.RoleAttribute {
			continue
		}
		if err := writeAttribute(c.Key, c.Value, w, es); err != nil {
			return err
		}
	}
	if es.isEmpty(entries) {
		return writeColor(w, es, SepColor, emptyClose(e.Name))
	}
	if err := writeColor(w, es, SepColor, ">"); err != nil {
		return err
	}
	didIndent, err := encodeChildren(entries, es.unit != "", w, es)
	if err != nil {
		return err
	}
	if didIndent {
		es.prefix = es.prefix[:len(es.prefix)-len(es.unit)]
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeTag(w, es, "</", e.Name, ">")
}

// emptyClose ends an element without content. Declarations such as
// <!DOCTYPE html> and <?xml-stylesheet ...> take no slash.
func emptyClose(name string) string {
	if strings.HasPrefix(name, "!") || strings.HasPrefix(name, "?") {
		return ">"
	}
	return "/>"
}

// isEmpty reports whether an element self-closes: only attribute entries
// (and dropped unnamed ones) do not count as content.
func (es *EncState) isEmpty(entries []ir.Entry) bool {
	if len(entries) == 0 {
		return !es.expandEmpty
	}
	for _, c := range entries {
		role, ok := es.role(c)
		if ok && role != ir.RoleAttribute {
			return false
		}
	}
	return true
}

// encodeChildren writes the non-attribute entries of a record. When
// willIndent is set the first entry which produces markup of its own
// opens one level of indentation; didIndent reports whether it did.
func encodeChildren(entries []ir.Entry, willIndent bool, w io.Writer, es *EncState) (didIndent bool, err error) {
	for _, c := range entries {
		role, ok := es.role(c)
		if !ok || role == ir.RoleAttribute {
			continue
		}
		c.Role = role
		if willIndent && es.indents(c) {
			es.prefix += es.unit
			willIndent = false
			didIndent = true
		}
		if err := encode(c, c.Value, w, es); err != nil {
			return didIndent, err
		}
	}
	return didIndent, nil
}

// indents reports whether an entry yields tags, comments or processing
// instructions rather than only text.
func (es *EncState) indents(c ir.Entry) bool {
	switch c.Role {
	case ir.RoleChild, ir.RoleComment, ir.RoleProcessingInstruction:
		return true
	case ir.RoleFragment:
	default:
		return false
	}
	switch ir.Classify(c.Value) {
	case ir.KindSequence:
		return true
	case ir.KindRecord:
		for _, cc := range c.Value.Entries() {
			role, ok := es.role(cc)
			if !ok {
				continue
			}
			cc.Role = role
			if es.indents(cc) {
				return true
			}
		}
	}
	return false
}
