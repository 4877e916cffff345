package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/signadot/toxml/ir"
)

// the JSON driver walks decoder tokens rather than unmarshaling into maps so
// that key order and duplicate keys survive.

func parseJSON(d []byte) (*ir.Node, error) {
	dec := newJSONDecoder(d)
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res, err := jsonValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return res, nil
}

func parseJSONStream(d []byte) ([]*ir.Node, error) {
	dec := newJSONDecoder(d)
	var res []*ir.Node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, len(res), err)
		}
		node, err := jsonValue(dec, tok)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(res), err)
		}
		res = append(res, node)
	}
	if len(res) == 0 {
		return nil, ErrEmpty
	}
	return res, nil
}

func newJSONDecoder(d []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	return dec
}

func jsonNext(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected end of JSON input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tok, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrParse, rune(x))
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		tok, err := jsonNext(dec)
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected object key, got %v", ErrParse, tok)
		}
		tok, err = jsonNext(dec)
		if err != nil {
			return nil, err
		}
		val, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KV(key, val))
	}
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for {
		tok, err := jsonNext(dec)
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return ir.FromSlice(vals), nil
		}
		val, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
}
