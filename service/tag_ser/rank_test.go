package tag_ser

import (
	"reflect"
	"testing"
)

func TestRankTagsEmptyInput(t *testing.T) {
	got := RankTags(nil, 10)
	if len(got) != 0 {
		t.Fatalf("空输入应该返回空结果, got %v", got)
	}

	got = RankTags([][]string{{}, {}}, 10)
	if len(got) != 0 {
		t.Fatalf("无标签的文章不应产生结果, got %v", got)
	}
}

func TestRankTagsFrequencyOrder(t *testing.T) {
	sets := [][]string{
		{"go", "web"},
		{"go", "redis"},
		{"go"},
		{"web"},
	}

	got := RankTags(sets, 10)

	// go出现3次，web出现2次，redis出现1次
	want := []string{"go", "web", "redis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RankTags() = %v, want %v", got, want)
	}
}

func TestRankTagsFrequencyMonotonic(t *testing.T) {
	sets := [][]string{
		{"a", "b", "c"},
		{"a", "b"},
		{"a"},
		{"d"},
	}

	got := RankTags(sets, 10)

	counts := map[string]int{"a": 3, "b": 2, "c": 1, "d": 1}
	for i := 1; i < len(got); i++ {
		if counts[got[i-1]] < counts[got[i]] {
			t.Fatalf("频次更高的标签 %q 不应排在 %q 之后: %v", got[i], got[i-1], got)
		}
	}
}

func TestRankTagsLimit(t *testing.T) {
	sets := [][]string{{"a", "b", "c", "d", "e"}}

	if got := RankTags(sets, 3); len(got) != 3 {
		t.Fatalf("limit=3 应返回3个, got %v", got)
	}
	// limit大于去重后数量时以实际数量为准
	if got := RankTags(sets, 100); len(got) != 5 {
		t.Fatalf("应返回全部5个, got %v", got)
	}
	if got := RankTags(sets, 0); len(got) != 0 {
		t.Fatalf("limit=0 应返回空, got %v", got)
	}
}

func TestRankTagsCaseSensitive(t *testing.T) {
	sets := [][]string{{"Go"}, {"go"}, {"go"}}

	got := RankTags(sets, 10)
	want := []string{"go", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("标签统计应区分大小写: got %v, want %v", got, want)
	}
}

func TestRankTagsTwoArticleScenario(t *testing.T) {
	// 两篇文章: ["tech","ai"] 和 ["tech","design"]
	sets := [][]string{
		{"tech", "ai"},
		{"tech", "design"},
	}

	got := RankTags(sets, 10)

	if len(got) != 3 {
		t.Fatalf("应返回3个标签, got %v", got)
	}
	if got[0] != "tech" {
		t.Fatalf("tech出现2次应排第一, got %v", got)
	}
	rest := map[string]bool{got[1]: true, got[2]: true}
	if !rest["ai"] || !rest["design"] {
		t.Fatalf("ai和design应紧随其后（顺序不限）, got %v", got)
	}
}
