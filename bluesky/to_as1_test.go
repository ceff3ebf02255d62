package bluesky

import (
	"testing"

	"github.com/vergenzt/granary/did"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alicePostView = map[string]any{
	"$type": "app.bsky.feed.defs#postView",
	"uri":   "at://did:web:alice.com/app.bsky.feed.post/3jxyz",
	"cid":   "bafyreie5737gdxlw5i64vzichcalba3z2v5n6icifvx5xytvske7mr3hpm",
	"record": map[string]any{
		"$type":     "app.bsky.feed.post",
		"text":      "pics",
		"createdAt": "2022-01-02T03:04:05.000Z",
	},
	"author": map[string]any{
		"$type":       "app.bsky.actor.defs#profileViewBasic",
		"description": "",
		"did":         "did:web:alice.com",
		"handle":      "alice.com",
		"displayName": "Alice",
	},
	"embed": map[string]any{
		"$type": "app.bsky.embed.images#presented",
		"images": []any{
			map[string]any{"thumb": "https://x.com/1.jpg", "fullsize": "https://x.com/1.jpg", "alt": "one"},
			map[string]any{"thumb": "https://x.com/2s.jpg", "fullsize": "https://x.com/2.jpg"},
		},
	},
	"replyCount":    3,
	"repostCount":   1,
	"upvoteCount":   5,
	"downvoteCount": 0,
	"indexedAt":     "2022-01-02T03:04:06.000Z",
}

var bobProfileView = map[string]any{
	"$type":       "app.bsky.actor.defs#profileView",
	"did":         "did:web:bob.com:users:bob",
	"handle":      "bob.com",
	"displayName": "Bob",
	"description": "",
}

func TestToAS1Empty(t *testing.T) {
	out, err := ToAS1(map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{}, out)

	out, err = ToAS1(nil)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{}, out)
}

func TestToAS1MissingType(t *testing.T) {
	for _, doc := range []map[string]any{
		{"text": "hi"},
		{"$type": "", "text": "hi"},
		{"$type": 3},
	} {
		_, err := ToAS1(doc)
		assert.ErrorIs(t, err, ErrMissingType)
	}
}

func TestToAS1Unsupported(t *testing.T) {
	for _, typ := range []string{
		"unknown/post",
		"app.bsky.feed.like",
		// storage forms are only produced, never read back
		"app.bsky.embed.images",
		"app.bsky.embed.external",
		"app.bsky.actor.profile",
	} {
		_, err := ToAS1(map[string]any{"$type": typ})
		assert.ErrorIs(t, err, ErrUnsupportedType, typ)
	}
}

func TestToAS1MistypedFields(t *testing.T) {
	testVec := []struct {
		name string
		in   map[string]any
		out  map[string]any
	}{
		{
			name: "follow",
			in:   map[string]any{"$type": "app.bsky.graph.follow", "subject": 5, "createdAt": "2022-05-06T07:08:09.000Z"},
			out:  map[string]any{"objectType": "activity", "verb": "follow"},
		},
		{
			name: "post",
			in: map[string]any{
				"$type":     "app.bsky.feed.post",
				"text":      []any{"x"},
				"createdAt": "2022-01-02T03:04:05.000Z",
				"entities": []any{
					"bogus",
					map[string]any{"type": "link", "value": "https://example.com"},
				},
				"reply": "https://alice.com/posts/1",
			},
			out: map[string]any{
				"objectType": "note",
				"published":  "2022-01-02T03:04:05.000Z",
				"tags":       []any{map[string]any{"url": "https://example.com"}},
			},
		},
		{
			name: "post view",
			in: map[string]any{
				"$type":  "app.bsky.feed.defs#postView",
				"uri":    "https://alice.com/posts/1",
				"record": map[string]any{"$type": "app.bsky.feed.post", "text": "hi", "createdAt": 7},
				"author": map[string]any{"did": 7, "displayName": "Alice", "handle": "alice.com"},
				"embed": map[string]any{
					"$type":  "app.bsky.embed.images#presented",
					"images": "nope",
				},
				"replyCount": "three",
			},
			out: map[string]any{
				"objectType": "note",
				"content":    "hi",
				"url":        "https://alice.com/posts/1",
				"author":     map[string]any{"objectType": "person", "displayName": "Alice"},
			},
		},
	}

	for _, v := range testVec {
		t.Run(v.name, func(t *testing.T) {
			out, err := ToAS1(v.in)
			require.NoError(t, err)
			assertDocEqual(t, v.out, out)
		})
	}
}

func TestToAS1Profile(t *testing.T) {
	for _, typ := range []string{
		"app.bsky.actor.defs#profileView",
		"app.bsky.actor.defs#profileViewBasic",
	} {
		t.Run(typ, func(t *testing.T) {
			out, err := ToAS1(map[string]any{
				"$type":       typ,
				"did":         "did:web:alice.com",
				"handle":      "alice.com",
				"displayName": "Alice",
				"description": "Likes cats.",
				"avatar":      "https://alice.com/avatar.jpg",
				"banner":      "https://alice.com/banner.jpg",
			})
			require.NoError(t, err)
			assertDocEqual(t, map[string]any{
				"objectType":  "person",
				"displayName": "Alice",
				"summary":     "Likes cats.",
				"url":         "https://alice.com/",
				"image": []any{
					map[string]any{"url": "https://alice.com/avatar.jpg"},
					map[string]any{"objectType": "featured", "url": "https://alice.com/banner.jpg"},
				},
			}, out)
		})
	}
}

func TestToAS1ProfileNonWebDID(t *testing.T) {
	_, err := ToAS1(map[string]any{
		"$type":  "app.bsky.actor.defs#profileView",
		"did":    "did:plc:ewvi7nxzyoun6zhxrhs64oiz",
		"handle": "alice.com",
	})
	assert.ErrorIs(t, err, did.ErrInvalidIdentifier)
}

func TestToAS1Post(t *testing.T) {
	out, err := ToAS1(map[string]any{
		"$type":     "app.bsky.feed.post",
		"text":      "hello link",
		"createdAt": "2022-01-02T03:04:05.000Z",
		"entities": []any{
			map[string]any{"type": "link", "value": "https://example.com", "index": map[string]any{"start": 6, "end": 10}},
			map[string]any{"type": "mention", "value": "did:web:bob.com", "index": map[string]any{"start": 0, "end": 5}},
			map[string]any{"type": "link", "value": "https://example.com/2"},
		},
		"reply": map[string]any{
			"root":   map[string]any{"uri": "https://alice.com/posts/0", "cid": "bafyroot"},
			"parent": map[string]any{"uri": "https://alice.com/posts/1", "cid": "bafyparent"},
		},
	})
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "comment",
		"content":    "hello link",
		"published":  "2022-01-02T03:04:05.000Z",
		"tags": []any{
			map[string]any{"url": "https://example.com", "startIndex": 6, "length": 4},
			map[string]any{"url": "https://example.com/2"},
		},
		"inReplyTo": []any{
			map[string]any{"url": "https://alice.com/posts/1"},
		},
	}, out)
}

func TestToAS1PostNotReply(t *testing.T) {
	out, err := ToAS1(map[string]any{
		"$type": "app.bsky.feed.post",
		"text":  "hi",
	})
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{"objectType": "note", "content": "hi"}, out)
}

func TestToAS1PresentedImages(t *testing.T) {
	out, err := ToAS1(alicePostView["embed"].(map[string]any))
	require.NoError(t, err)
	assertDocEqual(t, []any{
		map[string]any{"url": "https://x.com/1.jpg", "displayName": "one"},
		map[string]any{"url": "https://x.com/2.jpg"},
	}, out)
}

func TestToAS1PostView(t *testing.T) {
	out, err := ToAS1(alicePostView)
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "note",
		"content":    "pics",
		"published":  "2022-01-02T03:04:05.000Z",
		"url":        "at://did:web:alice.com/app.bsky.feed.post/3jxyz",
		"author": map[string]any{
			"objectType":  "person",
			"displayName": "Alice",
			"url":         "https://alice.com/",
		},
		"image": []any{
			map[string]any{"url": "https://x.com/1.jpg", "displayName": "one"},
			map[string]any{"url": "https://x.com/2.jpg"},
		},
	}, out)
}

func TestToAS1PostViewUnsupportedEmbed(t *testing.T) {
	for _, embed := range []map[string]any{
		{
			"$type": "app.bsky.embed.external#presented",
			"external": []any{
				map[string]any{"uri": "https://example.com", "title": "link", "description": ""},
			},
		},
		{
			"$type":  "app.bsky.embed.record#presented",
			"record": map[string]any{"uri": "https://alice.com/posts/0"},
		},
		{"images": []any{}},
	} {
		_, err := ToAS1(map[string]any{
			"$type":  "app.bsky.feed.defs#postView",
			"uri":    "https://alice.com/posts/1",
			"record": map[string]any{"$type": "app.bsky.feed.post", "text": "link"},
			"embed":  embed,
		})
		assert.ErrorIs(t, err, ErrUnsupportedType, embed["$type"])
	}

	_, err := ToAS1(map[string]any{
		"$type": "app.bsky.feed.feedViewPost",
		"post": map[string]any{
			"$type": "app.bsky.feed.defs#postView",
			"embed": map[string]any{"$type": "app.bsky.embed.external#presented"},
		},
	})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestToAS1FeedViewPost(t *testing.T) {
	post, err := ToAS1(alicePostView)
	require.NoError(t, err)

	out, err := ToAS1(map[string]any{
		"$type": "app.bsky.feed.feedViewPost",
		"post":  alicePostView,
	})
	require.NoError(t, err)
	assert.Equal(t, post, out)
}

func TestToAS1Repost(t *testing.T) {
	assert := assert.New(t)

	post, err := ToAS1(alicePostView)
	require.NoError(t, err)
	actor, err := ToAS1(bobProfileView)
	require.NoError(t, err)

	out, err := ToAS1(map[string]any{
		"$type": "app.bsky.feed.feedViewPost",
		"post":  alicePostView,
		"reason": map[string]any{
			"$type":     "app.bsky.feed.feedViewPost#reasonRepost",
			"by":        bobProfileView,
			"indexedAt": "2022-01-02T04:00:00.000Z",
		},
	})
	require.NoError(t, err)

	share := out.(map[string]any)
	assert.Equal("activity", share["objectType"])
	assert.Equal("share", share["verb"])
	assert.Equal(post, share["object"])
	assert.Equal(actor, share["actor"])
	assert.Equal("https://bob.com/users/bob", share["actor"].(map[string]any)["url"])
}

func TestToAS1Follow(t *testing.T) {
	out, err := ToAS1(map[string]any{
		"$type":     "app.bsky.graph.follow",
		"subject":   "https://bob.com/",
		"createdAt": "2022-05-06T07:08:09.000Z",
	})
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "activity",
		"verb":       "follow",
		"actor":      map[string]any{"url": "https://bob.com/"},
	}, out)
}

func TestRoundTripPost(t *testing.T) {
	bsky, err := FromAS1(map[string]any{
		"objectType": "comment",
		"url":        "https://bob.com/r/2",
		"content":    "agreed",
		"published":  "2022-01-03T00:00:00.000Z",
		"inReplyTo":  []any{map[string]any{"url": "https://alice.com/posts/1"}},
		"image":      []any{map[string]any{"url": "https://bob.com/pic.jpg", "displayName": "pic"}},
		"author":     map[string]any{"objectType": "person", "displayName": "Bob", "url": "https://bob.com/"},
	})
	require.NoError(t, err)

	out, err := ToAS1(bsky)
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "comment",
		"url":        "https://bob.com/r/2",
		"content":    "agreed",
		"published":  "2022-01-03T00:00:00.000Z",
		"inReplyTo":  []any{map[string]any{"url": "https://alice.com/posts/1"}},
		"image":      []any{map[string]any{"url": "https://bob.com/pic.jpg", "displayName": "pic"}},
		"author":     map[string]any{"objectType": "person", "displayName": "Bob", "url": "https://bob.com/"},
	}, out)
}

// Links become an external embed on the post view, which doesn't convert
// back.
func TestRoundTripPostWithLinks(t *testing.T) {
	bsky, err := FromAS1(map[string]any{
		"objectType": "note",
		"url":        "https://bob.com/r/3",
		"content":    "see this link",
		"tags":       []any{map[string]any{"url": "https://example.com", "startIndex": 9, "length": 4}},
	})
	require.NoError(t, err)

	_, err = ToAS1(bsky)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.ErrorContains(t, err, "app.bsky.embed.external#presented")

	// the stored record alone still converts, links included
	post := bsky["post"].(map[string]any)
	out, err := ToAS1(post["record"].(map[string]any))
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "note",
		"content":    "see this link",
		"tags":       []any{map[string]any{"url": "https://example.com", "startIndex": 9, "length": 4}},
	}, out)
}

func TestRoundTripRepost(t *testing.T) {
	assert := assert.New(t)

	bsky, err := FromAS1(loadFixture(t, "repost.as.json"))
	require.NoError(t, err)
	out, err := ToAS1(bsky)
	require.NoError(t, err)

	share := out.(map[string]any)
	assert.Equal("share", share["verb"])
	assertDocEqual(t, map[string]any{"objectType": "person", "displayName": "Bob", "url": "https://bob.com/"}, share["actor"])
	assertDocEqual(t, map[string]any{
		"objectType": "note",
		"url":        "https://alice.com/posts/1",
		"content":    "Hello, world!",
		"author":     map[string]any{"objectType": "person", "url": "https://alice.com/"},
	}, share["object"])
}

func TestRoundTripProfile(t *testing.T) {
	bsky, err := FromAS1(loadFixture(t, "profile.as.json"))
	require.NoError(t, err)
	out, err := ToAS1(bsky)
	require.NoError(t, err)

	// username only survives as part of the handle
	assertDocEqual(t, map[string]any{
		"objectType":  "person",
		"displayName": "Alice",
		"summary":     "Likes cats.",
		"url":         "https://alice.com/",
		"image": []any{
			map[string]any{"url": "https://alice.com/avatar.jpg"},
			map[string]any{"objectType": "featured", "url": "https://alice.com/banner.jpg"},
		},
	}, out)
}

func TestRoundTripFollow(t *testing.T) {
	bsky, err := FromAS1(loadFixture(t, "follow.as.json"))
	require.NoError(t, err)
	out, err := ToAS1(bsky)
	require.NoError(t, err)
	assertDocEqual(t, map[string]any{
		"objectType": "activity",
		"verb":       "follow",
		"actor":      map[string]any{"url": "https://alice.com/"},
	}, out)
}
