package util

import (
	"encoding/json"
)

type typeExtractor struct {
	Type string `json:"$type"`
}

// TypeExtract returns the "$type" field of a JSON object, or an empty string
// if the field is absent.
func TypeExtract(b []byte) (string, error) {
	var te typeExtractor
	if err := json.Unmarshal(b, &te); err != nil {
		return "", err
	}

	return te.Type, nil
}
