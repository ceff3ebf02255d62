package bsky

import (
	"encoding/json"
	"fmt"

	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.feed.defs

func init() {
	util.RegisterType("app.bsky.feed.defs#postView", &FeedDefs_PostView{})
}

type FeedDefs_PostView struct {
	LexiconTypeID string                      `json:"$type,omitempty"`
	Author        *ActorDefs_ProfileViewBasic `json:"author,omitempty"`
	Cid           string                      `json:"cid"`
	DownvoteCount int64                       `json:"downvoteCount"`
	Embed         *FeedDefs_PostView_Embed    `json:"embed,omitempty"`
	IndexedAt     string                      `json:"indexedAt"`
	Record        *FeedPost                   `json:"record"`
	ReplyCount    int64                       `json:"replyCount"`
	RepostCount   int64                       `json:"repostCount"`
	UpvoteCount   int64                       `json:"upvoteCount"`
	Uri           string                      `json:"uri"`
	Viewer        *FeedDefs_ViewerState       `json:"viewer,omitempty"`
}

type FeedDefs_PostView_Embed struct {
	EmbedImages_Presented   *EmbedImages_Presented
	EmbedExternal_Presented *EmbedExternal_Presented

	// Unrecognized holds the $type of an embed that matched no variant.
	Unrecognized string
}

func (t *FeedDefs_PostView_Embed) MarshalJSON() ([]byte, error) {
	if t.EmbedImages_Presented != nil {
		t.EmbedImages_Presented.LexiconTypeID = "app.bsky.embed.images#presented"
		return json.Marshal(t.EmbedImages_Presented)
	}
	if t.EmbedExternal_Presented != nil {
		t.EmbedExternal_Presented.LexiconTypeID = "app.bsky.embed.external#presented"
		return json.Marshal(t.EmbedExternal_Presented)
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}
func (t *FeedDefs_PostView_Embed) UnmarshalJSON(b []byte) error {
	typ, err := util.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.embed.images#presented":
		t.EmbedImages_Presented = new(EmbedImages_Presented)
		return util.UnmarshalLenient(b, t.EmbedImages_Presented)
	case "app.bsky.embed.external#presented":
		t.EmbedExternal_Presented = new(EmbedExternal_Presented)
		return util.UnmarshalLenient(b, t.EmbedExternal_Presented)

	default:
		t.Unrecognized = typ
		return nil
	}
}

type FeedDefs_ViewerState struct {
	LexiconTypeID string  `json:"$type,omitempty"`
	Downvote      *string `json:"downvote,omitempty"`
	Repost        *string `json:"repost,omitempty"`
	Upvote        *string `json:"upvote,omitempty"`
}
