package core

// error_messages.go maps errors to messages shown to users. Each message has
// a code that users can quote to support:
//
//	CSV001  the deck has no cards (flashcard.EmptyInput)
//	CSV002  a row has fewer than two columns (flashcard.InvalidFormat)
//	FILE001 upload exceeds the size limit
//	FILE002 file is not UTF-8
//	FILE003 file is not a .csv
//	FILE004 no file in the upload form
//	FILE005 filename contains a path or traversal
//	FILE006 deck file does not exist
//	FILE007 deck directory is missing
//	UPL001  all upload slots busy
//	UPL002  request cancelled
//	UPL003  request timed out
//	RATE001 rate limited
//	ERR000  anything else; check the logs for the technical error
//
// Parse errors keep their own text as Message, since that text is written
// for users and the page shows it verbatim.

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/flashcards/internal/flashcard"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Title   string // Short heading, e.g. "Invalid CSV format"
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

type errorMapping struct {
	target error
	msg    UserMessage
}

// errorMappings is checked in order with errors.Is; the first match wins.
var errorMappings = []errorMapping{
	{flashcard.ErrEmptyInput, UserMessage{
		Title:  "Invalid CSV format",
		Action: "Add at least one question,answer row",
		Code:   "CSV001",
	}},
	{flashcard.ErrInvalidFormat, UserMessage{
		Title:  "Invalid CSV format",
		Action: "Put the question in the first column and the answer in the second",
		Code:   "CSV002",
	}},
	{ErrFileTooLarge, UserMessage{
		Title:   "File too large",
		Message: "The file exceeds the maximum upload size",
		Action:  "Split the deck into smaller files",
		Code:    "FILE001",
	}},
	{ErrEncoding, UserMessage{
		Title:   "Encoding error",
		Message: "Unable to read file. Please ensure the file is UTF-8 encoded.",
		Action:  "Save the file as UTF-8 CSV",
		Code:    "FILE002",
	}},
	{ErrUnsupportedExtension, UserMessage{
		Title:   "Invalid file type",
		Message: "Only CSV files are allowed",
		Action:  "Choose a file ending in .csv",
		Code:    "FILE003",
	}},
	{ErrNoFile, UserMessage{
		Title:   "No file provided",
		Message: "Please select a file to upload",
		Action:  "Choose a CSV file and try again",
		Code:    "FILE004",
	}},
	{ErrInvalidFilename, UserMessage{
		Title:   "Invalid filename",
		Message: "The filename is not allowed",
		Action:  "Use a plain file name without folders",
		Code:    "FILE005",
	}},
	{ErrDeckNotFound, UserMessage{
		Title:   "File not found",
		Message: "The requested CSV file does not exist",
		Action:  "Refresh the file list and pick another deck",
		Code:    "FILE006",
	}},
	{ErrNotAFile, UserMessage{
		Title:   "File not found",
		Message: "The requested CSV file does not exist",
		Action:  "Refresh the file list and pick another deck",
		Code:    "FILE006",
	}},
	{ErrDataDirNotFound, UserMessage{
		Title:   "Directory not found",
		Message: "The deck directory is missing on the server",
		Action:  "Ask an administrator to check DATA_DIR",
		Code:    "FILE007",
	}},
	{ErrTooManyUploads, UserMessage{
		Title:   "Server busy",
		Message: "Too many uploads are in progress",
		Action:  "Please wait a moment and try again",
		Code:    "UPL001",
	}},
	{context.Canceled, UserMessage{
		Title:   "Request cancelled",
		Message: "The request was cancelled",
		Action:  "Please try again",
		Code:    "UPL002",
	}},
	{context.DeadlineExceeded, UserMessage{
		Title:   "Request timed out",
		Message: "The request took too long",
		Action:  "Try a smaller file or check your connection",
		Code:    "UPL003",
	}},
	{ErrRateLimited, UserMessage{
		Title:   "Too many requests",
		Message: "Too many requests",
		Action:  "Please wait a moment before trying again",
		Code:    "RATE001",
	}},
}

// defaultMessage is the ERR000 fallback.
var defaultMessage = UserMessage{
	Title:   "Server error",
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user-facing message. A nil error maps to
// the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.msg
		if kind := flashcard.KindOf(err); kind != 0 {
			msg.Message = kind.Message()
		}
		return msg
	}

	return defaultMessage
}

// FormatUserError renders "Message (Code: XXX). Action" for display.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	return err != nil && MapError(err).Code != defaultMessage.Code
}
