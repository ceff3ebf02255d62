package bsky

func (fp *FeedPost) GetReplyParentUri() (string, bool) {
	if fp.Reply != nil && fp.Reply.Parent != nil && fp.Reply.Parent.Uri != "" {
		return fp.Reply.Parent.Uri, true
	}

	return "", false
}

// GetLinkEntities returns the entities of type "link", in order.
func (fp *FeedPost) GetLinkEntities() []*FeedPost_Entity {
	var out []*FeedPost_Entity
	for _, ent := range fp.Entities {
		if ent != nil && ent.Type == "link" {
			out = append(out, ent)
		}
	}
	return out
}
