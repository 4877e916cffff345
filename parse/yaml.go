package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/toxml/ir"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ir.FromAny(v), nil
}
