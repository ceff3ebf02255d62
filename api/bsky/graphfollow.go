package bsky

import (
	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.graph.follow

func init() {
	util.RegisterType("app.bsky.graph.follow", &GraphFollow{})
}

// RECORDTYPE: GraphFollow
type GraphFollow struct {
	LexiconTypeID string `json:"$type"`
	CreatedAt     string `json:"createdAt"`
	Subject       string `json:"subject"`
}
