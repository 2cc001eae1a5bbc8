package slides

import (
	"errors"

	"github.com/xh3b4sd/tracer"
)

var invalidLayoutError = &tracer.Error{
	Kind: "invalidLayoutError",
	Desc: "The layout must be one of title or title-and-content.",
}

func IsInvalidLayout(err error) bool {
	return errors.Is(err, invalidLayoutError)
}
