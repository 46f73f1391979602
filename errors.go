package main

import "errors"

// The three failure classes of a generation run. Every error the pipeline
// returns wraps one of these; all of them abort the run. A blog that
// silently omits a post is worse than one that fails the build, so there is
// no skip-and-continue mode anywhere.
var (
	ErrMalformedPost   = errors.New("malformed post")
	ErrMissingTemplate = errors.New("missing template")
	ErrWriteFailure    = errors.New("write failure")
)
