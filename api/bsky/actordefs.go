package bsky

import (
	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.actor.defs

func init() {
	util.RegisterType("app.bsky.actor.defs#profileView", &ActorDefs_ProfileView{})
	util.RegisterType("app.bsky.actor.defs#profileViewBasic", &ActorDefs_ProfileViewBasic{})
}

type ActorDefs_ProfileView struct {
	LexiconTypeID string                 `json:"$type,omitempty"`
	Avatar        *string                `json:"avatar,omitempty"`
	Banner        *string                `json:"banner,omitempty"`
	Description   string                 `json:"description"`
	Did           string                 `json:"did"`
	DisplayName   *string                `json:"displayName,omitempty"`
	Handle        string                 `json:"handle"`
	IndexedAt     *string                `json:"indexedAt,omitempty"`
	Viewer        *ActorDefs_ViewerState `json:"viewer,omitempty"`
}

type ActorDefs_ProfileViewBasic struct {
	LexiconTypeID string                 `json:"$type,omitempty"`
	Avatar        *string                `json:"avatar,omitempty"`
	Banner        *string                `json:"banner,omitempty"`
	Description   string                 `json:"description"`
	Did           string                 `json:"did"`
	DisplayName   *string                `json:"displayName,omitempty"`
	Handle        string                 `json:"handle"`
	Viewer        *ActorDefs_ViewerState `json:"viewer,omitempty"`
}

type ActorDefs_ViewerState struct {
	LexiconTypeID string  `json:"$type,omitempty"`
	FollowedBy    *string `json:"followedBy,omitempty"`
	Following     *string `json:"following,omitempty"`
	Muted         *bool   `json:"muted,omitempty"`
}
