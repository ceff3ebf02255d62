package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidDID = errors.New("invalid DID")

// maxDIDLength bounds DIDs accepted from input.
const maxDIDLength = 2048

// did:<method>:<identifier>, where the identifier may contain colons and
// percent escapes but can't end with either.
var didPattern = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)

// DID is a decentralized identifier string that has passed ParseDID.
//
// https://atproto.com/specs/did
type DID string

func ParseDID(raw string) (DID, error) {
	switch {
	case raw == "":
		return "", fmt.Errorf("%w: empty string", ErrInvalidDID)
	case len(raw) > maxDIDLength:
		return "", fmt.Errorf("%w: longer than %d chars", ErrInvalidDID, maxDIDLength)
	case !didPattern.MatchString(raw):
		return "", fmt.Errorf("%w: %q", ErrInvalidDID, raw)
	}
	return DID(raw), nil
}

// Method is the DID method, eg "web" for did:web:foo.com.
func (d DID) Method() string {
	rest, ok := strings.CutPrefix(string(d), "did:")
	if !ok {
		return ""
	}
	method, _, _ := strings.Cut(rest, ":")
	return method
}

func (d DID) String() string {
	return string(d)
}
