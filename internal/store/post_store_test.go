package store

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

// minimalPost 四个必填字段齐全的最小请求
func minimalPost() PostInput {
	return PostInput{
		Platform: strptr("twitter"),
		PostID:   strptr("123"),
		Content:  strptr("hi"),
		Author:   strptr("bob"),
	}
}

func TestAddPostDefaults(t *testing.T) {
	gdb := openTestDB(t)
	feed := createTestFeed(t, NewFeedStore(gdb), 1, "My Feed")
	s := NewPostStore(gdb)

	post, err := s.Add(feed.ID, minimalPost())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if post.MediaType != "text" {
		t.Errorf("expected media_type text, got %q", post.MediaType)
	}
	if !post.IsApproved {
		t.Error("expected new post to be approved")
	}
	if post.IsHidden {
		t.Error("expected new post to be visible")
	}
	if post.PostedAt == nil {
		t.Error("expected posted_at to default to ingestion time")
	}
}

func TestAddPostMissingFields(t *testing.T) {
	gdb := openTestDB(t)
	feed := createTestFeed(t, NewFeedStore(gdb), 1, "My Feed")
	s := NewPostStore(gdb)

	_, err := s.Add(feed.ID, PostInput{Platform: strptr("twitter"), PostID: strptr("123")})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Message, "content") || !strings.Contains(ve.Message, "author") {
		t.Errorf("expected message to list missing fields, got %q", ve.Message)
	}

	// 显式空字符串算"已提供"
	in := minimalPost()
	in.Content = strptr("")
	if _, err := s.Add(feed.ID, in); err != nil {
		t.Errorf("explicit empty content should pass presence check, got %v", err)
	}
}

func TestAddPostUnknownFeed(t *testing.T) {
	s := NewPostStore(openTestDB(t))
	if _, err := s.Add(9999, minimalPost()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddPostPostedAt(t *testing.T) {
	gdb := openTestDB(t)
	feed := createTestFeed(t, NewFeedStore(gdb), 1, "My Feed")
	s := NewPostStore(gdb)

	in := minimalPost()
	in.PostedAt = strptr("2023-05-01T10:30:00")
	post, err := s.Add(feed.ID, in)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want := time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)
	if !post.PostedAt.Equal(want) {
		t.Errorf("expected posted_at %v, got %v", want, post.PostedAt)
	}

	in = minimalPost()
	in.PostedAt = strptr("not-a-timestamp")
	var ve *ValidationError
	if _, err := s.Add(feed.ID, in); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for malformed timestamp, got %v", err)
	}
}

func TestListForFeedFiltersAndOrders(t *testing.T) {
	gdb := openTestDB(t)
	feed := createTestFeed(t, NewFeedStore(gdb), 1, "My Feed")
	s := NewPostStore(gdb)

	older := minimalPost()
	older.PostID = strptr("older")
	older.PostedAt = strptr("2023-01-01T00:00:00")
	newer := minimalPost()
	newer.PostID = strptr("newer")
	newer.PostedAt = strptr("2023-06-01T00:00:00")
	hidden := minimalPost()
	hidden.PostID = strptr("hidden")

	if _, err := s.Add(feed.ID, older); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(feed.ID, newer); err != nil {
		t.Fatal(err)
	}
	hiddenPost, err := s.Add(feed.ID, hidden)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Moderate(feed.ID, hiddenPost.ID, nil, boolptr(true)); err != nil {
		t.Fatal(err)
	}

	posts, err := s.ListForFeed(feed.ID)
	if err != nil {
		t.Fatalf("ListForFeed failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 visible posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !p.IsApproved || p.IsHidden {
			t.Errorf("listing returned a non-visible post: %+v", p)
		}
	}
	if posts[0].PostID != "newer" || posts[1].PostID != "older" {
		t.Errorf("expected posted_at descending order, got %s then %s", posts[0].PostID, posts[1].PostID)
	}

	if _, err := s.ListForFeed(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown feed, got %v", err)
	}
}

func TestModeratePresenceSemantics(t *testing.T) {
	gdb := openTestDB(t)
	feedStore := NewFeedStore(gdb)
	feed := createTestFeed(t, feedStore, 1, "My Feed")
	s := NewPostStore(gdb)

	post, err := s.Add(feed.ID, minimalPost())
	if err != nil {
		t.Fatal(err)
	}

	// 显式 false 必须被应用
	moderated, err := s.Moderate(feed.ID, post.ID, boolptr(false), nil)
	if err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if moderated.IsApproved {
		t.Error("explicit is_approved=false was not applied")
	}

	// 重新读库确认落盘
	posts, err := s.ListForFeed(feed.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 0 {
		t.Errorf("unapproved post still listed, got %d posts", len(posts))
	}

	// 没出现的字段保持不变
	moderated, err = s.Moderate(feed.ID, post.ID, boolptr(true), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !moderated.IsApproved || moderated.IsHidden {
		t.Errorf("unexpected flags after re-approval: approved=%v hidden=%v", moderated.IsApproved, moderated.IsHidden)
	}
}

func TestModerateUnknownPair(t *testing.T) {
	gdb := openTestDB(t)
	feedStore := NewFeedStore(gdb)
	feedA := createTestFeed(t, feedStore, 1, "Feed A")
	feedB := createTestFeed(t, feedStore, 1, "Feed B")
	s := NewPostStore(gdb)

	post, err := s.Add(feedA.ID, minimalPost())
	if err != nil {
		t.Fatal(err)
	}

	// post 属于 feedA，用 feedB 的组合必须 404
	if _, err := s.Moderate(feedB.ID, post.ID, boolptr(true), nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for mismatched pair, got %v", err)
	}
}
