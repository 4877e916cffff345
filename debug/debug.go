package debug

import (
	"io"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Transform bool
	Encode    bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOXML_DEBUG_PARSE")
	d.Transform = boolEnv("TOXML_DEBUG_TRANSFORM")
	d.Encode = boolEnv("TOXML_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Transform() bool {
	return d.Transform
}
func Encode() bool {
	return d.Encode
}
