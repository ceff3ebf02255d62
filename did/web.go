package did

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vergenzt/granary/atproto/syntax"

	"github.com/PuerkitoBio/purell"
)

const webPrefix = "did:web:"

var ErrInvalidURL = errors.New("invalid URL")
var ErrInvalidIdentifier = errors.New("invalid did:web")

const webURLFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagUppercaseEscapes |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveDotSegments |
	purell.FlagRemoveFragment

func parseWebURL(raw string) (*url.URL, error) {
	clean, err := purell.NormalizeURLString(raw, webURLFlags)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	u, err := url.Parse(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return u, nil
}

// WebFromURL converts a URL to a did:web.
//
//   - https://foo.com => did:web:foo.com
//   - https://foo.com:3000 => did:web:foo.com%3A3000
//   - https://bar.com/baz/baj => did:web:bar.com:baz:baj
//
// The scheme, query and fragment do not survive the conversion.
//
// https://w3c-ccg.github.io/did-method-web/#example-creating-the-did
func WebFromURL(raw string) (syntax.DID, error) {
	u, err := parseWebURL(raw)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(webPrefix)
	sb.WriteString(escapeDIDChars(u.Host, true))
	for _, seg := range strings.Split(u.EscapedPath(), "/")[1:] {
		sb.WriteByte(':')
		sb.WriteString(escapeDIDChars(seg, false))
	}

	d, err := syntax.ParseDID(strings.TrimRight(sb.String(), ":"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	return d, nil
}

// WebToURL converts a did:web to an https URL.
//
//   - did:web:foo.com => https://foo.com/
//   - did:web:foo.com%3A3000 => https://foo.com:3000/
//   - did:web:bar.com:baz:baj => https://bar.com/baz/baj
//
// https://w3c-ccg.github.io/did-method-web/#read-resolve
func WebToURL(did string) (string, error) {
	d, err := syntax.ParseDID(did)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	if d.Method() != "web" {
		return "", fmt.Errorf("%w: %q has method %q", ErrInvalidIdentifier, did, d.Method())
	}

	host, path, _ := strings.Cut(strings.TrimPrefix(did, webPrefix), ":")
	if host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidIdentifier, did)
	}

	host, err = url.PathUnescape(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, did, err)
	}
	path, err = url.PathUnescape(strings.ReplaceAll(path, ":", "/"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, did, err)
	}

	return "https://" + host + "/" + path, nil
}

// NormalizeWebURL returns the URL that WebToURL(WebFromURL(raw)) produces: an
// https URL with a normalized host, no query or fragment, and no trailing
// slashes on a non-root path.
func NormalizeWebURL(raw string) (string, error) {
	u, err := parseWebURL(raw)
	if err != nil {
		return "", err
	}
	path := strings.TrimPrefix(strings.TrimRight(u.Path, "/"), "/")
	return "https://" + u.Host + "/" + path, nil
}

// escapeDIDChars percent-encodes every byte that may not appear in a DID
// identifier segment. Colons are always encoded, since they separate path
// segments. Existing escapes are preserved unless escapePercent is set.
func escapeDIDChars(s string, escapePercent bool) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '.', c == '_', c == '-':
			sb.WriteByte(c)
		case c == '%' && !escapePercent:
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(hex[c>>4])
			sb.WriteByte(hex[c&15])
		}
	}
	return sb.String()
}
