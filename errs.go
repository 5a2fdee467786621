package sx

import (
	"errors"
	"fmt"
)

var (
	ErrPattern     = errors.New("pattern error")
	ErrPatternForm = fmt.Errorf("%w: malformed form", ErrPattern)
)
