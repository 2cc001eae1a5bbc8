package deck

import (
	"errors"

	"github.com/xh3b4sd/tracer"
)

var invalidDeckError = &tracer.Error{
	Kind: "invalidDeckError",
	Desc: "A deck needs at least one slide and every slide needs a known layout and a title.",
}

func IsInvalidDeck(err error) bool {
	return errors.Is(err, invalidDeckError)
}
