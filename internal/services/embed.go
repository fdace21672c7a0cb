package services

import (
	"bytes"
	"text/template"
	"time"

	"feedwall/internal/utils"

	log "github.com/sirupsen/logrus"
)

// EmbedService 生成 Feed 的嵌入代码。
// 代码是 feed id 的纯函数：片段里只写入 id，帖子由浏览器渲染时实时拉取，
// 因此可以安全地按 id 缓存
type EmbedService struct {
	cache *utils.SnippetCache
}

// 全局单例
var embedService *EmbedService

// GetEmbedService 获取嵌入代码服务单例
func GetEmbedService() *EmbedService {
	if embedService == nil {
		cache, err := utils.NewSnippetCache(500, time.Hour)
		if err != nil {
			log.Fatalf("Failed to create snippet cache: %v", err)
		}
		embedService = &EmbedService{cache: cache}
	}
	return embedService
}

// EmbedCode 渲染嵌入代码片段
func (s *EmbedService) EmbedCode(feedID uint) string {
	if code, ok := s.cache.Get(feedID); ok {
		return code
	}

	var buf bytes.Buffer
	// 模板只含静态内容，渲染不会失败
	if err := snippetTmpl.Execute(&buf, map[string]uint{"FeedID": feedID}); err != nil {
		log.Errorf("Failed to render embed snippet: %v", err)
		return ""
	}
	code := buf.String()
	s.cache.Set(feedID, code)
	return code
}

// 使用 text/template：片段是原始 JS/CSS 文本，html/template 的上下文转义会破坏输出。
// 注意：帖子正文按约定原样插入页面，不做转义（见入库侧的 SANITIZE_CONTENT 开关）
var snippetTmpl = template.Must(template.New("embed").Parse(`<!-- Social Media Feed Widget -->
<div id="social-feed-{{.FeedID}}"></div>
<script>
(function() {
    var feedId = {{.FeedID}};
    var apiUrl = window.location.protocol + '//' + window.location.host;

    function loadSocialFeed() {
        fetch(apiUrl + '/api/feeds/' + feedId + '/posts')
            .then(response => response.json())
            .then(posts => {
                var container = document.getElementById('social-feed-' + feedId);
                if (!container) return;

                var html = '<div class="social-feed-container">';
                posts.forEach(function(post) {
                    html += '<div class="social-post">';
                    html += '<div class="post-header">';
                    if (post.author_avatar) {
                        html += '<img src="' + post.author_avatar + '" alt="' + post.author + '" class="author-avatar">';
                    }
                    html += '<span class="author-name">' + post.author + '</span>';
                    html += '<span class="platform">' + post.platform + '</span>';
                    html += '</div>';
                    html += '<div class="post-content">' + post.content + '</div>';
                    if (post.media_url && post.media_type === 'image') {
                        html += '<img src="' + post.media_url + '" alt="Post image" class="post-media">';
                    }
                    if (post.post_url) {
                        html += '<a href="' + post.post_url + '" target="_blank" class="post-link">View original</a>';
                    }
                    html += '</div>';
                });
                html += '</div>';

                container.innerHTML = html;

                if (!document.getElementById('social-feed-styles')) {
                    var style = document.createElement('style');
                    style.id = 'social-feed-styles';
                    style.textContent = '' +
                        '.social-feed-container { max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif; }' +
                        '.social-post { border: 1px solid #ddd; border-radius: 8px; margin-bottom: 16px; padding: 16px; background: white; }' +
                        '.post-header { display: flex; align-items: center; margin-bottom: 12px; }' +
                        '.author-avatar { width: 40px; height: 40px; border-radius: 50%; margin-right: 12px; }' +
                        '.author-name { font-weight: bold; margin-right: 8px; }' +
                        '.platform { color: #666; font-size: 12px; text-transform: uppercase; }' +
                        '.post-content { margin-bottom: 12px; line-height: 1.4; }' +
                        '.post-media { max-width: 100%; height: auto; border-radius: 4px; margin-bottom: 12px; }' +
                        '.post-link { color: #1976d2; text-decoration: none; font-size: 14px; }' +
                        '.post-link:hover { text-decoration: underline; }';
                    document.head.appendChild(style);
                }
            })
            .catch(error => console.error('Failed to load feed:', error));
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', loadSocialFeed);
    } else {
        loadSocialFeed();
    }
})();
</script>`))
