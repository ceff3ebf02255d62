package bluesky

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vergenzt/granary/api/bsky"
	"github.com/vergenzt/granary/as1"
	"github.com/vergenzt/granary/did"
	lexutil "github.com/vergenzt/granary/lex/util"
	"github.com/vergenzt/granary/util"
)

// ToAS1 converts a Bluesky lexicon document to AS1. The result is usually an
// object (map[string]any); an app.bsky.embed.images#presented embed converts
// to a list of images ([]any).
func ToAS1(doc map[string]any) (any, error) {
	if len(doc) == 0 {
		return map[string]any{}, nil
	}

	rec, err := decodeLexicon(doc)
	if err != nil {
		return nil, err
	}

	var out any
	if images, ok := rec.(*bsky.EmbedImages_Presented); ok {
		out = imagesToAS1(images)
	} else {
		out, err = toObject(rec)
		if err != nil {
			return nil, err
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding AS1 object: %w", err)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, fmt.Errorf("decoding AS1 object: %w", err)
	}
	return util.TrimNulls(generic), nil
}

func decodeLexicon(doc map[string]any) (any, error) {
	typ, _ := doc["$type"].(string)
	if typ == "" {
		return nil, ErrMissingType
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", typ, err)
	}
	rec, err := lexutil.JsonDecodeValue(b)
	switch {
	case errors.Is(err, lexutil.ErrUnrecognizedType):
		return nil, fmt.Errorf("%w: Bluesky object has $type %q", ErrUnsupportedType, typ)
	case err != nil:
		return nil, err
	}
	return rec, nil
}

func toObject(rec any) (*as1.Object, error) {
	switch v := rec.(type) {
	case *bsky.ActorDefs_ProfileView:
		return profileToAS1(v.Did, v.DisplayName, v.Description, v.Avatar, v.Banner)
	case *bsky.ActorDefs_ProfileViewBasic:
		return profileBasicToAS1(v)
	case *bsky.FeedPost:
		return postToAS1(v), nil
	case *bsky.FeedDefs_PostView:
		return postViewToAS1(v)
	case *bsky.FeedFeedViewPost:
		return feedViewPostToAS1(v)
	case *bsky.GraphFollow:
		return &as1.Object{
			ObjectType: as1.TypeActivity,
			Verb:       as1.VerbFollow,
			Actor:      as1.ObjectRef(&as1.Object{URL: as1.StringRef(v.Subject)}),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, rec)
	}
}

func profileToAS1(d string, displayName *string, description string, avatar, banner *string) (*as1.Object, error) {
	images := []*as1.Object{{URL: as1.StringRef(deref(avatar))}}
	if b := deref(banner); b != "" {
		images = append(images, &as1.Object{ObjectType: as1.TypeFeatured, URL: as1.StringRef(b)})
	}

	obj := &as1.Object{
		ObjectType:  as1.TypePerson,
		DisplayName: deref(displayName),
		Summary:     description,
		Image:       as1.ObjectList(images...),
	}

	if d != "" {
		u, err := did.WebToURL(d)
		if err != nil {
			return nil, err
		}
		obj.URL = as1.StringRef(u)
	}
	return obj, nil
}

func profileBasicToAS1(v *bsky.ActorDefs_ProfileViewBasic) (*as1.Object, error) {
	return profileToAS1(v.Did, v.DisplayName, v.Description, v.Avatar, v.Banner)
}

func postToAS1(post *bsky.FeedPost) *as1.Object {
	var tags []*as1.Object
	for _, ent := range post.GetLinkEntities() {
		tag := &as1.Object{URL: as1.StringRef(ent.Value)}
		if ent.Index != nil {
			var start, end int64
			if ent.Index.Start != nil {
				start = *ent.Index.Start
			}
			if ent.Index.End != nil {
				end = *ent.Index.End
			}
			tag.StartIndex = start
			tag.Length = end - start
		}
		tags = append(tags, tag)
	}

	obj := &as1.Object{
		ObjectType: as1.TypeNote,
		Content:    post.Text,
		Published:  post.CreatedAt,
		Tags:       as1.ObjectList(tags...),
	}
	if parent, ok := post.GetReplyParentUri(); ok {
		obj.ObjectType = as1.TypeComment
		obj.InReplyTo = as1.ObjectList(&as1.Object{URL: as1.StringRef(parent)})
	}
	return obj
}

func postViewToAS1(view *bsky.FeedDefs_PostView) (*as1.Object, error) {
	record := view.Record
	if record == nil {
		record = &bsky.FeedPost{}
	}
	obj := postToAS1(record)
	obj.URL = as1.StringRef(view.Uri)

	if view.Author != nil {
		author, err := profileBasicToAS1(view.Author)
		if err != nil {
			return nil, fmt.Errorf("post author: %w", err)
		}
		obj.Author = as1.ObjectRef(author)
	}

	if embed := view.Embed; embed != nil {
		if embed.EmbedImages_Presented == nil {
			return nil, fmt.Errorf("%w: post embed has $type %q", ErrUnsupportedType, embed.TypeID())
		}
		obj.Image = as1.ObjectList(imagesToAS1(embed.EmbedImages_Presented)...)
	}
	return obj, nil
}

func feedViewPostToAS1(fvp *bsky.FeedFeedViewPost) (*as1.Object, error) {
	post := &as1.Object{}
	if fvp.Post != nil {
		var err error
		if post, err = postViewToAS1(fvp.Post); err != nil {
			return nil, err
		}
	}

	if fvp.Reason == nil || fvp.Reason.FeedFeedViewPost_ReasonRepost == nil {
		return post, nil
	}

	share := &as1.Object{
		ObjectType: as1.TypeActivity,
		Verb:       as1.VerbShare,
		Object:     as1.ObjectRef(post),
	}
	if by := fvp.Reason.FeedFeedViewPost_ReasonRepost.By; by != nil {
		actor, err := profileToAS1(by.Did, by.DisplayName, by.Description, by.Avatar, by.Banner)
		if err != nil {
			return nil, fmt.Errorf("repost actor: %w", err)
		}
		share.Actor = as1.ObjectRef(actor)
	}
	return share, nil
}

func imagesToAS1(embed *bsky.EmbedImages_Presented) []*as1.Object {
	out := make([]*as1.Object, 0, len(embed.Images))
	for _, img := range embed.Images {
		if img == nil {
			continue
		}
		out = append(out, &as1.Object{
			URL:         as1.StringRef(img.Fullsize),
			DisplayName: img.Alt,
		})
	}
	return out
}
