package markup

import "errors"

// ErrInvalidMarkup is returned for markup that cannot be parsed.
var ErrInvalidMarkup = errors.New("invalid markup")
