package task

import "errors"

// ErrEmptyText is returned by Add when the title is empty after trimming.
var ErrEmptyText = errors.New("task text cannot be empty")
