package store

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// TagDelimiter separates tags in the stored tags column.
const TagDelimiter = "|"

// maxTagsLen is the width of the tags column.
const maxTagsLen = 127

// ErrInvalidTag is returned when a tag list cannot be stored losslessly.
var ErrInvalidTag = errors.New("invalid tag")

// JoinTags encodes tags for the tags column, preserving order.
// Tags must be non-empty and must not contain TagDelimiter.
func JoinTags(tags []string) (string, error) {
	for _, t := range tags {
		if t == "" {
			return "", fmt.Errorf("%w: tags must not be empty", ErrInvalidTag)
		}
		if strings.Contains(t, TagDelimiter) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidTag, t, TagDelimiter)
		}
	}
	joined := strings.Join(tags, TagDelimiter)
	if utf8.RuneCountInString(joined) > maxTagsLen {
		return "", fmt.Errorf("%w: tags exceed %d characters", ErrInvalidTag, maxTagsLen)
	}
	return joined, nil
}

// SplitTags decodes a stored tags column. An empty column is an empty list.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, TagDelimiter)
}
