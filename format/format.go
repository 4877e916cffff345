package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// AutoFormat picks JSON or YAML by looking at the document.
	AutoFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"":     AutoFormat,
		"a":    AutoFormat,
		"auto": AutoFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case AutoFormat:
		return []byte("auto"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsAuto() bool { return f == AutoFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// FromSuffix maps a file name extension to a format, AutoFormat when unknown.
func FromSuffix(ext string) Format {
	switch ext {
	case ".json":
		return JSONFormat
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return AutoFormat
	}
}
