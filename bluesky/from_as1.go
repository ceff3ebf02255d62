package bluesky

import (
	"fmt"
	"math"
	"net/url"

	"github.com/vergenzt/granary/api/atproto"
	"github.com/vergenzt/granary/api/bsky"
	"github.com/vergenzt/granary/as1"
	"github.com/vergenzt/granary/did"

	"github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"
	"github.com/multiformats/go-multihash"
)

var postTypes = map[string]bool{
	as1.TypeArticle: true,
	as1.TypeComment: true,
	as1.TypeMention: true,
	as1.TypeNote:    true,
}

// FromAS1 converts an AS1 object or activity to a Bluesky lexicon document:
// a person becomes an app.bsky.actor.defs#profileView, a post or share an
// app.bsky.feed.feedViewPost, and a follow an app.bsky.graph.follow record.
func FromAS1(obj map[string]any) (map[string]any, error) {
	activity, err := as1.FromMap(obj)
	if err != nil {
		return nil, err
	}
	rec, err := fromObject(activity)
	if err != nil {
		return nil, err
	}
	return lexDocument(rec, keepFields...)
}

// AS1ToProfile converts an AS1 actor to an app.bsky.actor.profile record.
func AS1ToProfile(actor map[string]any) (map[string]any, error) {
	obj, err := as1.FromMap(actor)
	if err != nil {
		return nil, err
	}
	if !as1.IsActorType(obj.ObjectType) {
		return nil, fmt.Errorf("%w: expected an actor, got objectType %q", ErrUnsupportedType, obj.ObjectType)
	}

	view := profileView(obj)
	profile := &bsky.ActorProfile{
		LexiconTypeID: "app.bsky.actor.profile",
		Avatar:        view.Avatar,
		Banner:        view.Banner,
		Description:   view.Description,
		DisplayName:   view.DisplayName,
	}
	return lexDocument(profile, keepFields...)
}

func fromObject(activity *as1.Object) (any, error) {
	verb := activity.VerbOrDefault()
	inner := activity.Object.First()
	actor := activity.Actor.First()

	obj := activity
	if verb == as1.VerbPost && inner != nil {
		obj = inner
	}
	typ := obj.TypeOrDefault()

	switch {
	case typ == as1.TypePerson:
		return profileView(obj), nil
	case verb == as1.VerbShare:
		return repost(inner, actor)
	case verb == as1.VerbFollow:
		return follow(activity, actor)
	case verb == as1.VerbPost && postTypes[typ]:
		return feedViewPost(obj, actor)
	default:
		return nil, fmt.Errorf("%w: AS1 object has objectType %q, verb %q", ErrUnsupportedType, typ, verb)
	}
}

// profileView uses an actor's first image as its avatar, even when that image
// is featured, and its first featured image as its banner.
func profileView(obj *as1.Object) *bsky.ActorDefs_ProfileView {
	var banner string
	for _, img := range obj.Image.Items {
		if img.Object != nil && img.Object.ObjectType == as1.TypeFeatured {
			if banner = img.URL(); banner != "" {
				break
			}
		}
	}

	u := obj.BestURL()
	d, err := did.WebFromURL(u)
	if err != nil {
		logger().Info("couldn't generate did:web", "url", u, "err", err)
	}

	return &bsky.ActorDefs_ProfileView{
		LexiconTypeID: "app.bsky.actor.defs#profileView",
		Avatar:        optString(obj.Image.URL()),
		Banner:        optString(banner),
		Description:   obj.Summary,
		Did:           d.String(),
		DisplayName:   optString(obj.DisplayName),
		Handle:        handle(obj.Username, u),
	}
}

// handle is username@host when there's a username, otherwise the URL's host
// and path.
func handle(username, rawURL string) string {
	var host, path string
	if u, err := url.Parse(rawURL); err == nil {
		host, path = u.Host, u.EscapedPath()
	}

	switch {
	case username != "" && host != "":
		return username + "@" + host
	case username != "":
		return username
	case path != "" && path != "/":
		return host + path
	default:
		return host
	}
}

func profileViewBasic(view *bsky.ActorDefs_ProfileView) *bsky.ActorDefs_ProfileViewBasic {
	return &bsky.ActorDefs_ProfileViewBasic{
		LexiconTypeID: "app.bsky.actor.defs#profileViewBasic",
		Avatar:        view.Avatar,
		Banner:        view.Banner,
		Description:   view.Description,
		Did:           view.Did,
		DisplayName:   view.DisplayName,
		Handle:        view.Handle,
	}
}

func repost(inner, actor *as1.Object) (*bsky.FeedFeedViewPost, error) {
	if inner.IsZero() {
		return nil, fmt.Errorf("%w: share activity", ErrMissingObject)
	}

	rec, err := fromObject(inner)
	if err != nil {
		return nil, err
	}
	post, ok := rec.(*bsky.FeedFeedViewPost)
	if !ok {
		return nil, fmt.Errorf("%w: can't share objectType %q", ErrUnsupportedType, inner.TypeOrDefault())
	}

	reason := &bsky.FeedFeedViewPost_ReasonRepost{IndexedAt: now()}
	if !actor.IsZero() {
		reason.By = profileView(actor)
	}
	post.Reason = &bsky.FeedFeedViewPost_Reason{FeedFeedViewPost_ReasonRepost: reason}
	return post, nil
}

func follow(activity, actor *as1.Object) (*bsky.GraphFollow, error) {
	if actor.IsZero() {
		return nil, fmt.Errorf("%w: follow activity", ErrMissingActor)
	}
	subject := actor.ID
	if subject == "" {
		subject = actor.URL.URL()
	}
	return &bsky.GraphFollow{
		LexiconTypeID: "app.bsky.graph.follow",
		CreatedAt:     activity.Published,
		Subject:       subject,
	}, nil
}

func feedViewPost(obj, actor *as1.Object) (*bsky.FeedFeedViewPost, error) {
	raw := as1.ContentForCreate(obj)
	text := as1.HTMLToText(raw)
	fromHTML := text != raw
	text = as1.Truncate(text, "", as1.OmitLink, TruncateTextLength)

	entities := linkEntities(obj, fromHTML)
	viewEmbed, recordEmbed := embeds(obj.Image, entities)

	record := &bsky.FeedPost{
		LexiconTypeID: "app.bsky.feed.post",
		CreatedAt:     obj.Published,
		Embed:         recordEmbed,
		Entities:      entities,
		Text:          text,
	}
	if target := replyTarget(obj); target != "" {
		ref, err := strongRef(target)
		if err != nil {
			return nil, err
		}
		root := *ref
		record.Reply = &bsky.FeedPost_ReplyRef{
			LexiconTypeID: "app.bsky.feed.post#replyRef",
			Parent:        ref,
			Root:          &root,
		}
	}

	c, err := recordCid(record)
	if err != nil {
		return nil, err
	}

	post := &bsky.FeedDefs_PostView{
		LexiconTypeID: "app.bsky.feed.defs#postView",
		Cid:           c,
		Embed:         viewEmbed,
		IndexedAt:     now(),
		Record:        record,
		Uri:           obj.URL.URL(),
	}

	author := obj.Author.First()
	if author.IsZero() {
		author = actor
	}
	if !author.IsZero() {
		post.Author = profileViewBasic(profileView(author))
	}

	return &bsky.FeedFeedViewPost{
		LexiconTypeID: "app.bsky.feed.feedViewPost",
		Post:          post,
	}, nil
}

// replyTarget is the url of the post obj replies to. An in-reply-to object
// with only an id isn't addressable, so it doesn't make a reply.
func replyTarget(obj *as1.Object) string {
	return obj.InReplyTo.URL()
}

// strongRef refers to a post by uri. The referenced record isn't available to
// hash, so the cid is a raw-codec CID of the uri itself.
func strongRef(uri string) (*atproto.RepoStrongRef, error) {
	c, err := cid.NewPrefixV1(cid.Raw, multihash.SHA2_256).Sum([]byte(uri))
	if err != nil {
		return nil, fmt.Errorf("computing cid for %q: %w", uri, err)
	}
	return &atproto.RepoStrongRef{
		LexiconTypeID: "com.atproto.repo.strongRef",
		Cid:           c.String(),
		Uri:           uri,
	}, nil
}

// linkEntities builds a link entity for each tag with a url. Spans index the
// raw content in code points.
func linkEntities(obj *as1.Object, fromHTML bool) []*bsky.FeedPost_Entity {
	content := []rune(obj.Content)

	var out []*bsky.FeedPost_Entity
	for _, tag := range obj.Tags.Objects() {
		u := tag.URL.URL()
		if u == "" {
			continue
		}

		ent := &bsky.FeedPost_Entity{Type: "link", Value: u}
		if start, end, ok := tagSpan(tag, len(content), fromHTML); ok {
			s, e := int64(start), int64(end)
			ent.Index = &bsky.FeedPost_TextSlice{Start: &s, End: &e}
			if len(content) > 0 {
				t := string(content[start:end])
				ent.Text = &t
			}
		}
		out = append(out, ent)
	}
	return out
}

// tagSpan returns the [start, end) span of a tag over content of the given
// length. Offsets into HTML content can't be mapped to the plain text, so
// only spans starting at zero survive there.
func tagSpan(tag *as1.Object, contentLen int, fromHTML bool) (int, int, bool) {
	start, err := as1.ParseIndex(tag.StartIndex)
	if err != nil {
		return 0, 0, false
	}
	length, err := as1.ParseIndex(tag.Length)
	if err != nil {
		return 0, 0, false
	}
	if start < 0 || length < 0 || (fromHTML && start != 0) {
		return 0, 0, false
	}
	end := start + length
	if contentLen > 0 && end > contentLen {
		return 0, 0, false
	}
	return start, end, true
}

// embeds returns the display and storage forms of a post's embed: its images
// if it has any, otherwise its links.
func embeds(images as1.Refs, entities []*bsky.FeedPost_Entity) (*bsky.FeedDefs_PostView_Embed, *bsky.FeedPost_Embed) {
	if !images.IsZero() {
		presented := &bsky.EmbedImages_Presented{}
		stored := &bsky.EmbedImages{}
		for i, img := range images.Items {
			if i == maxEmbeds {
				break
			}
			u := img.URL()
			var alt string
			if img.Object != nil {
				alt = img.Object.DisplayName
			}
			presented.Images = append(presented.Images, &bsky.EmbedImages_PresentedImage{
				LexiconTypeID: "app.bsky.embed.images#presentedImage",
				Alt:           alt,
				Fullsize:      u,
				Thumb:         u,
			})
			stored.Images = append(stored.Images, &bsky.EmbedImages_Image{
				LexiconTypeID: "app.bsky.embed.images#image",
				Alt:           alt,
				Image:         u,
			})
		}
		return &bsky.FeedDefs_PostView_Embed{EmbedImages_Presented: presented},
			&bsky.FeedPost_Embed{EmbedImages: stored}
	}

	if len(entities) == 0 {
		return nil, nil
	}

	presented := &bsky.EmbedExternal_Presented{}
	stored := &bsky.EmbedExternal{}
	for i, ent := range entities {
		if i == maxEmbeds {
			break
		}
		presented.External = append(presented.External, &bsky.EmbedExternal_PresentedExternal{
			LexiconTypeID: "app.bsky.embed.external#presentedExternal",
			Title:         deref(ent.Text),
			Uri:           ent.Value,
		})
		stored.External = append(stored.External, &bsky.EmbedExternal_External{
			LexiconTypeID: "app.bsky.embed.external#external",
			Title:         deref(ent.Text),
			Uri:           ent.Value,
		})
	}
	return &bsky.FeedDefs_PostView_Embed{EmbedExternal_Presented: presented},
		&bsky.FeedPost_Embed{EmbedExternal: stored}
}

// recordCid is the dag-cbor CID of the normalized post record, as a PDS
// would compute it.
func recordCid(record *bsky.FeedPost) (string, error) {
	doc, err := lexDocument(record, keepFields...)
	if err != nil {
		return "", err
	}
	b, err := cbor.DumpObject(cborValue(doc))
	if err != nil {
		return "", fmt.Errorf("encoding post record: %w", err)
	}
	c, err := cid.NewPrefixV1(cid.DagCBOR, multihash.SHA2_256).Sum(b)
	if err != nil {
		return "", fmt.Errorf("computing post cid: %w", err)
	}
	return c.String(), nil
}

// cborValue prepares a decoded JSON value for CBOR encoding. encoding/json
// decodes every number as a float64, but lexicon numbers are integers and
// must encode as such.
func cborValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = cborValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cborValue(elem)
		}
		return out
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v)
		}
		return v
	default:
		return val
	}
}
