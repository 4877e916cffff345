package encode

import (
	"github.com/signadot/toxml/ir"
)

// MustString renders v, converted with ir.FromAny, as an XML string.
func MustString(v any, opts ...EncodeOption) string {
	return Render(ir.FromAny(v), opts...)
}
