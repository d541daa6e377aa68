package passport

import "errors"

// ErrNoText is returned by callers that require usable document text when a
// pipeline run produced none.
var ErrNoText = errors.New("no document text recognized")
