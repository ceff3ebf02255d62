// Package bluesky converts between ActivityStreams 1.0 objects and the
// app.bsky lexicon documents used by early Bluesky: profile views, feed
// posts and post views, reposts and follows.
//
// Both directions operate on generic JSON documents (map[string]any) and
// return normalized output with empty values removed.
package bluesky

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vergenzt/granary/atproto/syntax"
	"github.com/vergenzt/granary/util"
)

// logger is resolved on each use so that it follows slog.SetDefault.
func logger() *slog.Logger {
	return slog.Default().With("system", "bluesky")
}

var (
	ErrMissingType     = errors.New("bluesky object missing $type field")
	ErrMissingActor    = errors.New("activity has no actor")
	ErrMissingObject   = errors.New("activity has no object")
	ErrUnsupportedType = errors.New("unsupported object type")
)

// TruncateTextLength is the maximum length of post text, in graphemes.
const TruncateTextLength = 256

// maxEmbeds bounds the number of images or external links embedded in a post.
const maxEmbeds = 4

// keepFields are emitted by FromAS1 even when empty, since the lexicons
// require them.
var keepFields = []string{"createdAt", "description", "did", "handle", "text", "viewer"}

// lexDocument encodes a lexicon struct as a generic JSON document and trims
// empty values, except the keep fields.
func lexDocument(v any, keep ...string) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding lexicon document: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decoding lexicon document: %w", err)
	}
	return util.TrimNullsMap(out, keep...), nil
}

func now() string {
	return syntax.DatetimeNow().String()
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
