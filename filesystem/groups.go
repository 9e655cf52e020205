// filesystem/groups.go
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ViniZap4/groupboard/domain"
	"github.com/goccy/go-json"
)

// GroupFile is a JSON array of groups on disk. It is read on every call to
// Groups so edits to the file show up on the next request.
type GroupFile struct {
	Path string
}

// rawGroup mirrors domain.Group with pointers so absent and null fields can
// be told apart from empty ones.
type rawGroup struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	Tags        *[]*string `json:"tags"`
}

func (f GroupFile) Groups(ctx context.Context) ([]domain.Group, error) {
	data, err := readFile(f.Path)
	if err != nil {
		return nil, err
	}
	return ParseGroups(data)
}

// ParseGroups decodes a JSON array of groups. Every object must carry name,
// description, url and tags; unknown keys are ignored.
func ParseGroups(data []byte) ([]domain.Group, error) {
	var raw *[]rawGroup
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSchema, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array of groups, got null", domain.ErrSchema)
	}

	groups := make([]domain.Group, 0, len(*raw))
	for i, r := range *raw {
		g, err := r.group()
		if err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", domain.ErrSchema, i, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (r rawGroup) group() (domain.Group, error) {
	switch {
	case r.Name == nil:
		return domain.Group{}, errors.New("missing field name")
	case r.Description == nil:
		return domain.Group{}, errors.New("missing field description")
	case r.URL == nil:
		return domain.Group{}, errors.New("missing field url")
	case r.Tags == nil:
		return domain.Group{}, errors.New("missing field tags")
	}

	tags := make([]string, 0, len(*r.Tags))
	for i, t := range *r.Tags {
		if t == nil {
			return domain.Group{}, fmt.Errorf("tag %d is null", i)
		}
		tags = append(tags, *t)
	}

	return domain.Group{
		Name:        *r.Name,
		Description: *r.Description,
		URL:         *r.URL,
		Tags:        tags,
	}, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return data, nil
}
