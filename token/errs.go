package token

import (
	"errors"
)

var (
	// ErrBadUTF8 is the encoding failure: the input is not valid UTF-8.
	// It is the only error [Tokenize] returns; no tokens are produced
	// alongside it.
	ErrBadUTF8 = errors.New("bad utf8")
)
