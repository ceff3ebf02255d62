package as1

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TruncateMode controls whether Truncate appends a link to the original.
type TruncateMode int

const (
	// IncludeLink always appends the link.
	IncludeLink TruncateMode = iota
	// OmitLink never appends the link.
	OmitLink
	// IncludeIfTruncated appends the link only when the text was shortened.
	IncludeIfTruncated
)

// Ellipsis marks text that Truncate shortened.
const Ellipsis = "…"

// ContentForCreate returns the text to publish for obj: its summary, else its
// content, else its display name or name. The result is still HTML if the
// chosen field was; see [HTMLToText].
func ContentForCreate(obj *Object) string {
	if obj == nil {
		return ""
	}
	for _, s := range []string{obj.Summary, obj.Content, obj.DisplayName, obj.Name} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

var markupRegex = regexp.MustCompile(`<[a-zA-Z!/]|&(#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)

// LooksLikeHTML reports whether s contains a tag or a character reference.
func LooksLikeHTML(s string) bool {
	return markupRegex.MatchString(s)
}

// HTMLToText renders HTML as plain text: tags are dropped, character
// references decoded, whitespace collapsed, and block elements and <br>
// become line breaks. Strings with no markup are only trimmed.
func HTMLToText(s string) string {
	if !LooksLikeHTML(s) {
		return strings.TrimSpace(s)
	}

	var tb textBuilder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF, or a tokenizer error; either way we're done
			return tb.String()
		case html.TextToken:
			if skip == 0 {
				tb.WriteText(string(z.Text()))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch a := atom.Lookup(name); {
			case a == atom.Br:
				tb.LineBreak()
			case a == atom.Script || a == atom.Style:
				if tt == html.StartTagToken {
					skip++
				}
			case isBlock(a):
				tb.ParagraphBreak()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch a := atom.Lookup(name); {
			case a == atom.Script || a == atom.Style:
				if skip > 0 {
					skip--
				}
			case isBlock(a):
				tb.ParagraphBreak()
			}
		}
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Blockquote, atom.Pre, atom.Ul, atom.Ol, atom.Li,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Hr, atom.Table, atom.Tr:
		return true
	}
	return false
}

// textBuilder collapses whitespace and defers line breaks until the next
// visible character, so leading and trailing breaks never appear.
type textBuilder struct {
	sb     strings.Builder
	space  bool
	breaks int
}

func (tb *textBuilder) WriteText(s string) {
	for _, r := range s {
		if unicode.IsSpace(r) {
			tb.space = true
			continue
		}
		if tb.sb.Len() > 0 {
			if tb.breaks > 0 {
				tb.sb.WriteString(strings.Repeat("\n", tb.breaks))
			} else if tb.space {
				tb.sb.WriteByte(' ')
			}
		}
		tb.space = false
		tb.breaks = 0
		tb.sb.WriteRune(r)
	}
}

func (tb *textBuilder) LineBreak() {
	if tb.breaks < 2 {
		tb.breaks++
	}
}

func (tb *textBuilder) ParagraphBreak() {
	tb.breaks = 2
}

func (tb *textBuilder) String() string {
	return tb.sb.String()
}

// Truncate shortens text to at most maxLen grapheme clusters, counting the
// link (and the space before it) when mode appends one. Text that has to be
// shortened is cut at a word boundary where possible and ends with Ellipsis.
// A maxLen of zero or less disables shortening.
func Truncate(text, link string, mode TruncateMode, maxLen int) string {
	text = strings.TrimSpace(text)
	if link == "" {
		mode = OmitLink
	}

	suffix := ""
	if mode == IncludeLink || mode == IncludeIfTruncated {
		suffix = " " + link
	}

	length := uniseg.GraphemeClusterCount(text)
	if mode == IncludeLink {
		length += uniseg.GraphemeClusterCount(suffix)
	}
	if maxLen <= 0 || length <= maxLen {
		if mode == IncludeLink {
			return text + suffix
		}
		return text
	}

	budget := maxLen - uniseg.GraphemeClusterCount(Ellipsis) - uniseg.GraphemeClusterCount(suffix)
	if budget < 0 {
		budget = 0
	}
	return cutGraphemes(text, budget) + Ellipsis + suffix
}

// cutGraphemes returns a prefix of s no longer than n grapheme clusters,
// backing up to the last whitespace inside that prefix if there is one.
func cutGraphemes(s string, n int) string {
	end := 0
	lastSpace := -1
	count := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && count < n {
		from, to := gr.Positions()
		if r := gr.Runes(); len(r) == 1 && unicode.IsSpace(r[0]) {
			lastSpace = from
		}
		end = to
		count++
	}

	// the cut falls between words if the next cluster is whitespace
	if end < len(s) && lastSpace >= 0 {
		if next, _ := utf8.DecodeRuneInString(s[end:]); !unicode.IsSpace(next) {
			end = lastSpace
		}
	}
	return strings.TrimRightFunc(s[:end], unicode.IsSpace)
}
