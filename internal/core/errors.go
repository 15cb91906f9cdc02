package core

import "errors"

// Deck file errors. Wrapped errors keep these as their root so callers can
// use errors.Is; MapError turns them into user messages.
var (
	ErrDataDirNotFound      = errors.New("deck directory not found")
	ErrInvalidFilename      = errors.New("invalid filename")
	ErrDeckNotFound         = errors.New("deck file not found")
	ErrNotAFile             = errors.New("not a regular file")
	ErrEncoding             = errors.New("encoding error: file is not valid UTF-8")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrFileTooLarge         = errors.New("file too large")
	ErrNoFile               = errors.New("no file provided")
	ErrRateLimited          = errors.New("rate limit exceeded")
)
