package seed

import "testing"

func TestRepositoryAddAndFind(t *testing.T) {
	repo := NewRepository()

	repo.Add(Article{
		ID:      "a1",
		Title:   "标题",
		Content: "正文内容",
	})

	got, ok := repo.Find("a1")
	if !ok {
		t.Fatal("Find() 应该找到刚添加的记录")
	}
	if got.Title != "标题" {
		t.Fatalf("Title = %q", got.Title)
	}

	if _, ok := repo.Find("missing"); ok {
		t.Fatal("不存在的ID不应命中")
	}
}

func TestRepositoryDefaultsFilled(t *testing.T) {
	repo := NewRepository(Article{
		ID:      "a2",
		Title:   "只有正文",
		Content: "这是一段正文，用来生成摘要。",
	})

	got, _ := repo.Find("a2")

	if got.Excerpt == "" {
		t.Error("摘要应该从正文截取")
	}
	if got.CoverURL != DefaultCover {
		t.Errorf("封面应使用缺省值, got %q", got.CoverURL)
	}
	if got.AuthorName != DefaultAuthor {
		t.Errorf("作者名应使用缺省值, got %q", got.AuthorName)
	}
	if got.AuthorAvatar != DefaultAvatar {
		t.Errorf("头像应使用缺省值, got %q", got.AuthorAvatar)
	}
	if got.ReadTime != DefaultReadTime {
		t.Errorf("阅读时长应为缺省值, got %q", got.ReadTime)
	}
	if got.Tags == nil {
		t.Error("标签应为空切片而不是nil")
	}
}

func TestRepositoryAddOverwritesSameID(t *testing.T) {
	repo := NewRepository(Article{ID: "a3", Title: "旧标题", Content: "x"})
	repo.Add(Article{ID: "a3", Title: "新标题", Content: "x"})

	if repo.Len() != 1 {
		t.Fatalf("同ID应覆盖而不是追加, len=%d", repo.Len())
	}
	got, _ := repo.Find("a3")
	if got.Title != "新标题" {
		t.Fatalf("Title = %q", got.Title)
	}
}

func TestDefaultCorpusComplete(t *testing.T) {
	repo := Default()
	if repo.Len() == 0 {
		t.Fatal("内置文章库不应为空")
	}
	for _, a := range repo.All() {
		if a.ID == "" || a.Title == "" || a.Excerpt == "" ||
			a.CoverURL == "" || a.AuthorName == "" || a.AuthorAvatar == "" ||
			a.ReadTime == "" || a.PublishedAt == "" {
			t.Errorf("记录 %q 存在未补全的展示字段: %+v", a.ID, a)
		}
	}
}
