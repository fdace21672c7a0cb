package utils

import (
	"strings"
	"testing"
	"time"
)

func TestStringToUint(t *testing.T) {
	if got := StringToUint("42"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	// 非法输入一律返回 0，后续查询自然落空
	for _, s := range []string{"", "abc", "-1", "1.5"} {
		if got := StringToUint(s); got != 0 {
			t.Errorf("expected 0 for %q, got %d", s, got)
		}
	}
}

func TestSnippetCache(t *testing.T) {
	cache, err := NewSnippetCache(2, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewSnippetCache failed: %v", err)
	}

	cache.Set(1, "one")
	if v, ok := cache.Get(1); !ok || v != "one" {
		t.Errorf("expected cache hit, got %q %v", v, ok)
	}
	if _, ok := cache.Get(2); ok {
		t.Error("expected miss for unknown key")
	}

	// 过期后失效
	time.Sleep(60 * time.Millisecond)
	if _, ok := cache.Get(1); ok {
		t.Error("expected entry to expire")
	}
}

func TestSanitizeContent(t *testing.T) {
	dirty := `hello <script>alert(1)</script><b>world</b>`
	clean := SanitizeContent(dirty)
	if strings.Contains(clean, "<script>") {
		t.Errorf("script tag survived sanitization: %q", clean)
	}
	if !strings.Contains(clean, "<b>world</b>") {
		t.Errorf("benign markup should survive: %q", clean)
	}
}
