package ctypes

// ArticleStatus 文章状态
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

// Valid 检查状态值是否合法
func (s ArticleStatus) Valid() bool {
	return s == ArticleDraft || s == ArticlePublished
}
