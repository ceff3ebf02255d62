package bsky

import (
	"encoding/json"
	"fmt"

	comatprototypes "github.com/vergenzt/granary/api/atproto"
	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.feed.post

func init() {
	util.RegisterType("app.bsky.feed.post", &FeedPost{})
}

// RECORDTYPE: FeedPost
type FeedPost struct {
	LexiconTypeID string             `json:"$type"`
	CreatedAt     string             `json:"createdAt"`
	Embed         *FeedPost_Embed    `json:"embed,omitempty"`
	Entities      []*FeedPost_Entity `json:"entities,omitempty"`
	Reply         *FeedPost_ReplyRef `json:"reply,omitempty"`
	Text          string             `json:"text"`
}

type FeedPost_Embed struct {
	EmbedImages   *EmbedImages
	EmbedExternal *EmbedExternal
}

func (t *FeedPost_Embed) MarshalJSON() ([]byte, error) {
	if t.EmbedImages != nil {
		t.EmbedImages.LexiconTypeID = "app.bsky.embed.images"
		return json.Marshal(t.EmbedImages)
	}
	if t.EmbedExternal != nil {
		t.EmbedExternal.LexiconTypeID = "app.bsky.embed.external"
		return json.Marshal(t.EmbedExternal)
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}
func (t *FeedPost_Embed) UnmarshalJSON(b []byte) error {
	typ, err := util.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.embed.images":
		t.EmbedImages = new(EmbedImages)
		return util.UnmarshalLenient(b, t.EmbedImages)
	case "app.bsky.embed.external":
		t.EmbedExternal = new(EmbedExternal)
		return util.UnmarshalLenient(b, t.EmbedExternal)

	default:
		return nil
	}
}

// Deprecated text annotation. Start and End are nil when the span could not
// be resolved against the post text.
type FeedPost_Entity struct {
	LexiconTypeID string              `json:"$type,omitempty"`
	Index         *FeedPost_TextSlice `json:"index"`
	Text          *string             `json:"text"`
	Type          string              `json:"type"`
	Value         string              `json:"value"`
}

type FeedPost_ReplyRef struct {
	LexiconTypeID string                         `json:"$type,omitempty"`
	Parent        *comatprototypes.RepoStrongRef `json:"parent"`
	Root          *comatprototypes.RepoStrongRef `json:"root"`
}

type FeedPost_TextSlice struct {
	LexiconTypeID string `json:"$type,omitempty"`
	End           *int64 `json:"end"`
	Start         *int64 `json:"start"`
}
