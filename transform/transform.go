package transform

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/toxml/debug"
	"github.com/signadot/toxml/encode"
	"github.com/signadot/toxml/ir"
)

type Env map[string]any

func envOf(key string, node *ir.Node) Env {
	attr := strings.HasPrefix(key, ir.AttributePrefix)
	name := key
	if attr {
		name = key[len(ir.AttributePrefix):]
	} else if ir.RoleOf(key) != ir.RoleChild {
		name = ""
	}
	return Env{
		"key":   key,
		"name":  name,
		"attr":  attr,
		"kind":  ir.Classify(node).String(),
		"value": ir.ToPlain(node),
	}
}

type stepKind int

const (
	dropStep stepKind = iota
	mapStep
)

func (k stepKind) String() string {
	if k == dropStep {
		return "drop"
	}
	return "map"
}

type step struct {
	kind stepKind
	src  string
	prg  *vm.Program
}

// Pipeline is an ordered list of drop and map expressions. The first
// evaluation error is kept and reported by Err; the entry it occurred on is
// left unchanged.
type Pipeline struct {
	steps []step
	err   error
}

func compile(k stepKind, src string) (step, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return step{}, fmt.Errorf("%w: %s %q: %w", ErrCompile, k, src, err)
	}
	return step{kind: k, src: src, prg: prg}, nil
}

// Drop adds an expression selecting entries to leave out.
func (p *Pipeline) Drop(src string) error {
	s, err := compile(dropStep, src)
	if err != nil {
		return err
	}
	p.steps = append(p.steps, s)
	return nil
}

// Map adds an expression computing a replacement for scalar and null
// values.
func (p *Pipeline) Map(src string) error {
	s, err := compile(mapStep, src)
	if err != nil {
		return err
	}
	p.steps = append(p.steps, s)
	return nil
}

func (p *Pipeline) Len() int { return len(p.steps) }

func (p *Pipeline) Err() error { return p.err }

// Transform returns the pipeline as an encode.Transform, or nil if it is
// empty.
func (p *Pipeline) Transform() encode.Transform {
	if len(p.steps) == 0 {
		return nil
	}
	return p.apply
}

func (p *Pipeline) apply(key string, node *ir.Node) *ir.Node {
	for i := range p.steps {
		s := &p.steps[i]
		kind := ir.Classify(node)
		if kind == ir.KindAbsent {
			return node
		}
		if s.kind == mapStep && kind != ir.KindScalar && kind != ir.KindNull {
			continue
		}
		res, err := expr.Run(s.prg, envOf(key, node))
		if err != nil {
			if p.err == nil {
				p.err = fmt.Errorf("%w: %s %q on %q: %w", ErrEval, s.kind, s.src, key, err)
			}
			return node
		}
		if debug.Transform() {
			debug.Logf("%s %q on %q: %v\n", s.kind, s.src, key, res)
		}
		switch s.kind {
		case dropStep:
			if ir.Truth(ir.FromAny(res)) {
				return ir.Absent()
			}
		case mapStep:
			node = ir.FromAny(res)
		}
	}
	return node
}

// Chain applies transforms in order, each to the result of the previous.
// nil transforms are skipped.
func Chain(ts ...encode.Transform) encode.Transform {
	var live []encode.Transform
	for _, t := range ts {
		if t != nil {
			live = append(live, t)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(key string, node *ir.Node) *ir.Node {
		for _, t := range live {
			node = t(key, node)
			if ir.Classify(node) == ir.KindAbsent {
				return node
			}
		}
		return node
	}
}
