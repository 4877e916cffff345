package debug

import (
	"fmt"

	"github.com/signadot/toxml/ir"

	"github.com/goccy/go-json"
)

// Node shows a node as its JSON value form under %s and %v.
type Node struct{ *ir.Node }

func (y Node) String() string {
	d, err := y.Node.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return string(d)
}

// Logf writes to stderr. Node and native container arguments are shown as
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			args[i] = Node{x}.String()
		case map[string]any, []any, ir.Ordered:
			d, err := json.Marshal(ir.FromAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
