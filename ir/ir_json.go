package ir

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalJSON writes the node as the plain JSON value it stands for,
// keeping record key order. Absent values are written as null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	switch Classify(y) {
	case KindAbsent, KindNull:
		buf.WriteString("null")
		return nil
	case KindRecord:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case KindSequence:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	switch y.Type {
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	default:
		s, _ := Text(y)
		switch s {
		case "NaN", "Infinity", "-Infinity", "":
			buf.WriteString("null")
		default:
			buf.WriteString(s)
		}
	}
	return nil
}
