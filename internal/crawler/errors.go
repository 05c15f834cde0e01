package crawler

import "errors"

// ErrNotDirectory is returned when a corpus path is not a directory.
var ErrNotDirectory = errors.New("corpus is not a directory")
