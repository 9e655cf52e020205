// domain/group.go
package domain

import "errors"

type Group struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Tags        []string `json:"tags" yaml:"tags"`
}

var (
	// ErrNotFound is returned when the group data or the page template does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when a source exists but cannot be read.
	ErrIO = errors.New("read failed")
	// ErrSchema is returned when group data does not have the Group shape.
	ErrSchema = errors.New("invalid group data")
)
