package api

import (
	"strconv"
	"strings"
)

// ErrFailedRequest is returned when the API answers with a non-2xx
// status code.
type ErrFailedRequest struct {
	URL    string
	Status int
}

func (e *ErrFailedRequest) Error() string {
	return "request to " + e.URL + " failed with status code " + strconv.Itoa(e.Status)
}

// ErrCardNotFound is returned when a card lookup by ID succeeds at the
// HTTP level but carries no card.
type ErrCardNotFound struct {
	ID uint64
}

func (e *ErrCardNotFound) Error() string {
	return "no card found with id " + strconv.FormatUint(e.ID, 10)
}

// ErrNoSuchCardName is returned when a name search matches nothing.
// Suggestions may carry close names for a "did you mean" hint.
type ErrNoSuchCardName struct {
	Name        string
	Suggestions []string
}

func (e *ErrNoSuchCardName) Error() string {
	msg := "no cards exist with name: " + e.Name
	if len(e.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

// ErrNoSuchPage is returned when a page request lands beyond the last
// page of results.
type ErrNoSuchPage struct {
	Page uint64
}

func (e *ErrNoSuchPage) Error() string {
	return "no cards on page " + strconv.FormatUint(e.Page, 10)
}

// ErrHeaderMissing is returned when a response lacks a pagination or
// rate-limit header.
type ErrHeaderMissing struct {
	Name string
}

func (e *ErrHeaderMissing) Error() string {
	return "response header not found: " + e.Name
}
