package seed

// corpus 内置文章数据，字段不全的记录由normalize补全
var corpus = []Article{
	{
		ID:          "1001",
		Title:       "用Go写一个博客后端",
		Content:     "从路由到数据库，一步一步搭建一个可以上线的博客后端。先从项目结构说起，gin负责HTTP层，gorm负责持久化，zap负责日志。配置用viper管理，放在settings.yaml里，改动后热加载。",
		Tags:        []string{"go", "web"},
		AuthorName:  "溺水寻舟",
		PublishedAt: "2024-03-12T10:00:00Z",
		Featured:    true,
	},
	{
		ID:          "1002",
		Title:       "Redis在内容站点里的几种用法",
		Content:     "浏览计数、热门榜单、令牌黑名单，这三个场景都适合放进Redis。浏览计数用HIncrBy配合SetNX做IP去重，榜单用ZSet，黑名单用带TTL的普通键。",
		Tags:        []string{"go", "redis"},
		AuthorName:  "溺水寻舟",
		PublishedAt: "2024-04-02T08:30:00Z",
	},
	{
		ID:          "1003",
		Title:       "MySQL里的软删除与唯一索引",
		Content:     "gorm的DeletedAt和唯一索引放在一起会有坑：被软删除的行仍然占着索引位。点赞收藏这类关系行直接硬删除更省心。",
		Tags:        []string{"mysql", "gorm"},
		PublishedAt: "2024-04-20T14:00:00Z",
	},
	{
		ID:          "1004",
		Title:       "全文搜索：从LIKE到Elasticsearch",
		Content:     "数据量小的时候LIKE够用，但要做相关度排序和多字段加权就得上ES。multi_match配合字段权重，标题给3倍权重，摘要2倍，正文1倍。",
		Tags:        []string{"elasticsearch", "web"},
		AuthorName:  "阿舟",
		PublishedAt: "2024-05-08T09:15:00Z",
	},
	{
		ID:          "1005",
		Title:       "JWT双令牌实践",
		Content:     "access token放短有效期，refresh token放长有效期存Redis。登出时access token进黑名单，refresh token直接删掉。",
		Tags:        []string{"go", "web", "安全"},
		PublishedAt: "2024-06-01T16:45:00Z",
	},
	{
		ID:          "1006",
		Title:       "写给新人的markdown排版建议",
		Content:     "标题层级不要跳跃，代码块记得标语言，图片加alt。写完用预览过一遍，别让读者替你校对。",
		Tags:        []string{"写作"},
		AuthorName:  "阿舟",
		PublishedAt: "2024-06-15T11:20:00Z",
	},
}
