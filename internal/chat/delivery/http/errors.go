package http

import "errors"

var (
	errWrongBody = errors.New("prompt is required")
)
