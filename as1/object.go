package as1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Object is an AS1 object or activity. Every field is optional; an absent
// field is its zero value.
//
// Decoding is lenient: a field whose JSON value has the wrong shape is left
// unset rather than failing the whole object, and unknown fields are ignored.
type Object struct {
	ID          string `json:"id,omitempty"`
	ObjectType  string `json:"objectType,omitempty"`
	Verb        string `json:"verb,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Name        string `json:"name,omitempty"`
	Username    string `json:"username,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	Published   string `json:"published,omitempty"`
	Updated     string `json:"updated,omitempty"`

	URL       Refs `json:"url,omitzero"`
	Object    Refs `json:"object,omitzero"`
	Actor     Refs `json:"actor,omitzero"`
	Author    Refs `json:"author,omitzero"`
	InReplyTo Refs `json:"inReplyTo,omitzero"`
	Image     Refs `json:"image,omitzero"`
	Tags      Refs `json:"tags,omitzero"`

	// Tag spans over the parent's content. JSON numbers or numeric strings;
	// see [ParseIndex].
	StartIndex any `json:"startIndex,omitempty"`
	Length     any `json:"length,omitempty"`
}

func (o *Object) field(key string) any {
	switch key {
	case "id":
		return &o.ID
	case "objectType":
		return &o.ObjectType
	case "verb":
		return &o.Verb
	case "displayName":
		return &o.DisplayName
	case "name":
		return &o.Name
	case "username":
		return &o.Username
	case "summary":
		return &o.Summary
	case "content":
		return &o.Content
	case "published":
		return &o.Published
	case "updated":
		return &o.Updated
	case "url":
		return &o.URL
	case "object":
		return &o.Object
	case "actor":
		return &o.Actor
	case "author":
		return &o.Author
	case "inReplyTo":
		return &o.InReplyTo
	case "image":
		return &o.Image
	case "tags":
		return &o.Tags
	case "startIndex":
		return &o.StartIndex
	case "length":
		return &o.Length
	default:
		return nil
	}
}

func (o *Object) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*o = Object{}
	for key, raw := range fields {
		dst := o.field(key)
		if dst == nil {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			// wrong shape: leave the field unset
			continue
		}
	}
	return nil
}

// IsZero reports whether no field of o is set.
func (o *Object) IsZero() bool {
	if o == nil {
		return true
	}
	return o.ID == "" && o.ObjectType == "" && o.Verb == "" && o.DisplayName == "" &&
		o.Name == "" && o.Username == "" && o.Summary == "" && o.Content == "" &&
		o.Published == "" && o.Updated == "" && o.URL.IsZero() && o.Object.IsZero() &&
		o.Actor.IsZero() && o.Author.IsZero() && o.InReplyTo.IsZero() &&
		o.Image.IsZero() && o.Tags.IsZero() && o.StartIndex == nil && o.Length == nil
}

// BestURL returns the object's first URL, falling back to its id.
func (o *Object) BestURL() string {
	if o == nil {
		return ""
	}
	if u := o.URL.URL(); u != "" {
		return u
	}
	return o.ID
}

// FromMap decodes a generic JSON document in to an Object.
func FromMap(m map[string]any) (*Object, error) {
	var out Object
	if len(m) == 0 {
		return &out, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding AS1 object: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decoding AS1 object: %w", err)
	}
	return &out, nil
}

// ToMap encodes o as a generic JSON document.
func (o *Object) ToMap() (map[string]any, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ref is one value of a field that AS1 allows to be either a bare string or
// a nested object. Exactly one of Value and Object is set.
type Ref struct {
	Value  string
	Object *Object
}

// AsObject returns the referenced object. A bare string is taken to be the
// object's id.
func (r Ref) AsObject() *Object {
	if r.Object != nil {
		return r.Object
	}
	return &Object{ID: r.Value}
}

// URL returns the bare string, or the URL of the nested object.
func (r Ref) URL() string {
	if r.Object != nil {
		return r.Object.URL.URL()
	}
	return r.Value
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Object != nil {
		return json.Marshal(r.Object)
	}
	return json.Marshal(r.Value)
}

// Refs holds an AS1 field that may be a single value or a list of values.
// Plural records which of the two shapes to use when encoding.
type Refs struct {
	Items  []Ref
	Plural bool
}

// StringRef returns a single bare string value, or the empty Refs for "".
func StringRef(s string) Refs {
	if s == "" {
		return Refs{}
	}
	return Refs{Items: []Ref{{Value: s}}}
}

// ObjectRef returns a single object value, or the empty Refs for nil.
func ObjectRef(o *Object) Refs {
	if o.IsZero() {
		return Refs{}
	}
	return Refs{Items: []Ref{{Object: o}}}
}

// ObjectList returns a list of objects, skipping empty ones.
func ObjectList(objs ...*Object) Refs {
	out := Refs{Plural: true}
	for _, o := range objs {
		if !o.IsZero() {
			out.Items = append(out.Items, Ref{Object: o})
		}
	}
	return out
}

func (rs Refs) IsZero() bool {
	return len(rs.Items) == 0
}

// First returns the first value as an object, or nil if there are none.
func (rs Refs) First() *Object {
	if len(rs.Items) == 0 {
		return nil
	}
	return rs.Items[0].AsObject()
}

// Objects returns every value as an object.
func (rs Refs) Objects() []*Object {
	out := make([]*Object, 0, len(rs.Items))
	for _, r := range rs.Items {
		out = append(out, r.AsObject())
	}
	return out
}

// URL returns the URL of the first value, or "".
func (rs Refs) URL() string {
	if len(rs.Items) == 0 {
		return ""
	}
	return rs.Items[0].URL()
}

func (rs Refs) MarshalJSON() ([]byte, error) {
	if len(rs.Items) == 1 && !rs.Plural {
		return json.Marshal(rs.Items[0])
	}
	if rs.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(rs.Items)
}

func (rs *Refs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*rs = Refs{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] != '[' {
		r, ok, err := decodeRef(b)
		if err != nil {
			return err
		}
		if ok {
			rs.Items = []Ref{r}
		}
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	rs.Plural = true
	for _, raw := range raws {
		r, ok, err := decodeRef(raw)
		if err != nil {
			return err
		}
		if ok {
			rs.Items = append(rs.Items, r)
		}
	}
	return nil
}

// decodeRef decodes a string or object. Other JSON values (null, numbers,
// booleans, nested arrays) are skipped.
func decodeRef(b []byte) (Ref, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return Ref{}, false, nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Ref{}, false, err
		}
		return Ref{Value: s}, s != "", nil
	case '{':
		var o Object
		if err := json.Unmarshal(b, &o); err != nil {
			return Ref{}, false, err
		}
		return Ref{Object: &o}, true, nil
	default:
		return Ref{}, false, nil
	}
}

// ParseIndex interprets a tag's startIndex or length: a JSON number or a
// string holding a base 10 integer. Fractional numbers are truncated.
func ParseIndex(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, fmt.Errorf("missing index")
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("invalid index %v", n)
		}
		return int(n), nil
	case json.Number:
		return ParseIndex(string(n))
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("invalid index type %T", v)
	}
}
