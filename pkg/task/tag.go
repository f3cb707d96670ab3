package task

import (
	"fmt"
	"strings"
)

// Tag categorises a task.
type Tag string

const (
	// TagWork marks job related tasks.
	TagWork Tag = "work"
	// TagPrivate marks personal errands.
	TagPrivate Tag = "private"
	// TagStudy marks learning.
	TagStudy Tag = "study"
	// TagOther is the catch-all.
	TagOther Tag = "other"
)

// AllTags returns the supported tags in display order.
func AllTags() []Tag {
	return []Tag{
		TagWork,
		TagPrivate,
		TagStudy,
		TagOther,
	}
}

// ParseTag converts a string to a Tag or returns an error for unknown values.
// An empty string yields TagOther.
func ParseTag(raw string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TagOther, nil
	}
	if !t.Valid() {
		return "", fmt.Errorf("task: unknown tag %q (expected one of %s)", raw, strings.Join(TagNames(), ", "))
	}
	return t, nil
}

// TagNames lists the tags as plain strings, handy for flag help and enums.
func TagNames() []string {
	tags := AllTags()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = string(t)
	}
	return names
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	switch t {
	case TagWork, TagPrivate, TagStudy, TagOther:
		return true
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}
