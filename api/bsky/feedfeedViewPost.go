package bsky

import (
	"encoding/json"
	"fmt"

	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.feed.feedViewPost

func init() {
	util.RegisterType("app.bsky.feed.feedViewPost", &FeedFeedViewPost{})
}

type FeedFeedViewPost struct {
	LexiconTypeID string                   `json:"$type,omitempty"`
	Post          *FeedDefs_PostView       `json:"post"`
	Reason        *FeedFeedViewPost_Reason `json:"reason,omitempty"`
}

type FeedFeedViewPost_Reason struct {
	FeedFeedViewPost_ReasonRepost *FeedFeedViewPost_ReasonRepost
}

func (t *FeedFeedViewPost_Reason) MarshalJSON() ([]byte, error) {
	if t.FeedFeedViewPost_ReasonRepost != nil {
		t.FeedFeedViewPost_ReasonRepost.LexiconTypeID = "app.bsky.feed.feedViewPost#reasonRepost"
		return json.Marshal(t.FeedFeedViewPost_ReasonRepost)
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}
func (t *FeedFeedViewPost_Reason) UnmarshalJSON(b []byte) error {
	typ, err := util.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.feed.feedViewPost#reasonRepost":
		t.FeedFeedViewPost_ReasonRepost = new(FeedFeedViewPost_ReasonRepost)
		return util.UnmarshalLenient(b, t.FeedFeedViewPost_ReasonRepost)

	default:
		return nil
	}
}

type FeedFeedViewPost_ReasonRepost struct {
	LexiconTypeID string                 `json:"$type,omitempty"`
	By            *ActorDefs_ProfileView `json:"by,omitempty"`
	IndexedAt     string                 `json:"indexedAt"`
}
