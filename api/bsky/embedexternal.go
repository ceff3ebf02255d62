package bsky

// schema: app.bsky.embed.external

type EmbedExternal struct {
	LexiconTypeID string                    `json:"$type,omitempty"`
	External      []*EmbedExternal_External `json:"external"`
}

type EmbedExternal_External struct {
	LexiconTypeID string  `json:"$type,omitempty"`
	Description   string  `json:"description"`
	Thumb         *string `json:"thumb,omitempty"`
	Title         string  `json:"title"`
	Uri           string  `json:"uri"`
}

type EmbedExternal_Presented struct {
	LexiconTypeID string                             `json:"$type,omitempty"`
	External      []*EmbedExternal_PresentedExternal `json:"external"`
}

type EmbedExternal_PresentedExternal struct {
	LexiconTypeID string  `json:"$type,omitempty"`
	Description   string  `json:"description"`
	Thumb         *string `json:"thumb,omitempty"`
	Title         string  `json:"title"`
	Uri           string  `json:"uri"`
}
