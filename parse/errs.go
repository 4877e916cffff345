package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	ErrEmpty = fmt.Errorf("%w: empty input", ErrParse)
)
