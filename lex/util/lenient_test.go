package util

import (
	"testing"
)

type testTag struct {
	Name string `json:"name"`
}

type testPost struct {
	LexiconTypeID string     `json:"$type"`
	Text          string     `json:"text"`
	Count         int64      `json:"count"`
	Tags          []*testTag `json:"tags"`
	Reply         *testTag   `json:"reply,omitempty"`
	Labels        []string   `json:"labels"`
	Skipped       string     `json:"-"`
}

func init() {
	RegisterType("com.example.test.post", &testPost{})
}

func TestJsonDecodeValueMistyped(t *testing.T) {
	raw, err := JsonDecodeValue([]byte(`{
		"$type": "com.example.test.post",
		"text": 5,
		"count": 3,
		"tags": [{"name": "a"}, "bogus", {"name": 7}, null],
		"reply": "not an object",
		"labels": "nope",
		"Skipped": "x"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	post := raw.(*testPost)

	if post.Text != "" {
		t.Fatalf("mistyped text should be unset, got %q", post.Text)
	}
	if post.Count != 3 {
		t.Fatalf("wrong count: %d", post.Count)
	}
	if len(post.Tags) != 3 || post.Tags[0].Name != "a" || post.Tags[1].Name != "" || post.Tags[2] != nil {
		t.Fatalf("wrong tags: %+v", post.Tags)
	}
	if post.Reply != nil {
		t.Fatalf("mistyped reply should be unset, got %+v", post.Reply)
	}
	if post.Labels != nil {
		t.Fatalf("mistyped labels should be unset, got %v", post.Labels)
	}
	if post.Skipped != "" {
		t.Fatal("fields tagged - should not decode")
	}
}

func TestUnmarshalLenientNested(t *testing.T) {
	var post testPost
	err := UnmarshalLenient([]byte(`{"reply": {"name": "b"}, "labels": ["x", "y"], "tags": null}`), &post)
	if err != nil {
		t.Fatal(err)
	}
	if post.Reply == nil || post.Reply.Name != "b" {
		t.Fatalf("wrong reply: %+v", post.Reply)
	}
	if len(post.Labels) != 2 {
		t.Fatalf("wrong labels: %v", post.Labels)
	}
	if post.Tags != nil {
		t.Fatalf("null tags should stay nil: %v", post.Tags)
	}
}

func TestUnmarshalLenientNotObject(t *testing.T) {
	var post testPost
	if err := UnmarshalLenient([]byte(`["a"]`), &post); err == nil {
		t.Fatal("expected an error decoding an array in to a struct")
	}
	if err := UnmarshalLenient([]byte(`{}`), post); err == nil {
		t.Fatal("expected an error decoding in to a non-pointer")
	}
}
