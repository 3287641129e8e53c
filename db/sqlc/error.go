package db

import "errors"

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrPostClosed     = errors.New("post is closed")
	ErrThreadNotFound = errors.New("thread not found")
	ErrLineEmpty      = errors.New("line empty")
	ErrDataCorrupted  = errors.New("data is corrupted")
)
