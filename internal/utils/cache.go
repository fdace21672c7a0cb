package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry 包装缓存值和过期时间
type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// SnippetCache 带 TTL 的本地 LRU 缓存，用于缓存按 feed 生成的嵌入代码
type SnippetCache struct {
	lruCache *lru.Cache[uint, cacheEntry]
	ttl      time.Duration
}

// NewSnippetCache 创建指定容量和过期时间的缓存
func NewSnippetCache(size int, ttl time.Duration) (*SnippetCache, error) {
	l, err := lru.New[uint, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &SnippetCache{lruCache: l, ttl: ttl}, nil
}

// Set 写入缓存
func (c *SnippetCache) Set(key uint, value string) {
	c.lruCache.Add(key, cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Get 读取缓存，不存在或已过期返回 false
func (c *SnippetCache) Get(key uint) (string, bool) {
	entry, ok := c.lruCache.Get(key)
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		c.lruCache.Remove(key)
		return "", false
	}
	return entry.value, true
}
