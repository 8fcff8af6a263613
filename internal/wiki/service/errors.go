package service

import "errors"

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAnswerExists signals that the question already has an answer.
	ErrAnswerExists = errors.New("answer already exists")
)
