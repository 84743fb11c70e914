package cli

import "errors"

// ErrNotUpToDate is returned by --check when processing would change the file.
var ErrNotUpToDate = errors.New("not up to date")
