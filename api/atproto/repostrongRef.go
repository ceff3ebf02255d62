package atproto

// schema: com.atproto.repo.strongRef

type RepoStrongRef struct {
	LexiconTypeID string `json:"$type,omitempty"`
	Cid           string `json:"cid"`
	Uri           string `json:"uri"`
}
