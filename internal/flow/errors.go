package flow

import "errors"

// ErrUnknownPage is returned by [ParsePage] for anything but "auth" or "notes".
var ErrUnknownPage = errors.New("unknown page")
