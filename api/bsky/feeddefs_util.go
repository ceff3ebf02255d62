package bsky

// TypeID returns the $type of the embed's variant.
func (t *FeedDefs_PostView_Embed) TypeID() string {
	switch {
	case t.EmbedImages_Presented != nil:
		return "app.bsky.embed.images#presented"
	case t.EmbedExternal_Presented != nil:
		return "app.bsky.embed.external#presented"
	default:
		return t.Unrecognized
	}
}
