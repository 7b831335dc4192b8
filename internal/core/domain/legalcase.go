package domain

import "errors"

var ErrCaseNotFound = errors.New("case not found")

// Case is a stored legal case record. Records carry no ownership link to the
// user that created them.
type Case struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
