package service

import (
	"errors"

	"github.com/alexanderramin/dayline/internal/completion"
)

var (
	// ErrPersistence wraps every store failure surfaced by a use case. The
	// underlying error stays reachable through errors.Is/As.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotExecutable is returned when completing an Advice item.
	ErrNotExecutable = completion.ErrNotExecutable

	// ErrItemNotFound is returned for an index outside the day's items.
	ErrItemNotFound = errors.New("directive item not found")

	// ErrNoDirective is returned when a date has no stored directive.
	ErrNoDirective = errors.New("no directive for date")
)
