package pptx

import (
	"errors"

	"github.com/xh3b4sd/tracer"
)

var invalidPresentationError = &tracer.Error{
	Kind: "invalidPresentationError",
	Desc: "Every slide must carry a title shape and at most one body shape.",
}

func IsInvalidPresentation(err error) bool {
	return errors.Is(err, invalidPresentationError)
}
