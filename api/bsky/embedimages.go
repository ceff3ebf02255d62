package bsky

import (
	"github.com/vergenzt/granary/lex/util"
)

// schema: app.bsky.embed.images

func init() {
	util.RegisterType("app.bsky.embed.images#presented", &EmbedImages_Presented{})
}

type EmbedImages struct {
	LexiconTypeID string               `json:"$type,omitempty"`
	Images        []*EmbedImages_Image `json:"images"`
}

type EmbedImages_Image struct {
	LexiconTypeID string `json:"$type,omitempty"`
	Alt           string `json:"alt"`
	Image         string `json:"image"`
}

type EmbedImages_Presented struct {
	LexiconTypeID string                         `json:"$type,omitempty"`
	Images        []*EmbedImages_PresentedImage `json:"images"`
}

type EmbedImages_PresentedImage struct {
	LexiconTypeID string `json:"$type,omitempty"`
	Alt           string `json:"alt"`
	Fullsize      string `json:"fullsize"`
	Thumb         string `json:"thumb"`
}
