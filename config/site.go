package config

// Site 站点展示相关配置
type Site struct {
	Name               string `mapstructure:"name"`
	PlaceholderCover   string `mapstructure:"placeholder_cover"`   // 默认封面
	PlaceholderAvatar  string `mapstructure:"placeholder_avatar"`  // 默认头像
	PopularTagLimit    int    `mapstructure:"popular_tag_limit"`   // 热门标签数量上限
	RelatedLimit       int    `mapstructure:"related_limit"`       // 相关文章数量上限
	SensitiveWordsFile string `mapstructure:"sensitive_words_file"`
}
