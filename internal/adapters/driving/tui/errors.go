package tui

import "errors"

// ErrMissingFeedService is returned when no feed service is provided.
var ErrMissingFeedService = errors.New("tui: feed service is required")
