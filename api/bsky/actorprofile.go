package bsky

// schema: app.bsky.actor.profile

// RECORDTYPE: ActorProfile
type ActorProfile struct {
	LexiconTypeID string  `json:"$type"`
	Avatar        *string `json:"avatar,omitempty"`
	Banner        *string `json:"banner,omitempty"`
	Description   string  `json:"description"`
	DisplayName   *string `json:"displayName,omitempty"`
}
