package classifier

import (
	"testing"

	"github.com/decker502/necromirror/pkg/theme"
)

func testRules() theme.URLRules {
	return theme.URLRules{
		Priority: []theme.Category{
			theme.CategoryTransportation,
			theme.CategoryClothing,
			theme.CategoryFood,
		},
		Keywords: map[theme.Category][]string{
			theme.CategoryTransportation: {"united.com", "flight", "travel"},
			theme.CategoryClothing:       {"fashion", "lingerie"},
			theme.CategoryFood:           {"chocolate", "candy", "sweet"},
		},
	}
}

// TestClassify 测试 URL 分类
func TestClassify(t *testing.T) {
	c := New(testRules())

	tests := []struct {
		name     string
		url      string
		expected theme.Category
	}{
		// 规格示例场景：chocolate 命中域名 → food
		{"域名含关键词", "https://www.chocolateworld.com/sweet/deals", theme.CategoryFood},
		{"关键词含裸域名", "https://www.united.com/booking", theme.CategoryTransportation},
		{"路径含关键词", "https://www.example.com/flight/search", theme.CategoryTransportation},
		{"无命中返回兜底", "https://www.example.com/news", theme.CategoryGeneral},
		{"空字符串返回兜底", "", theme.CategoryGeneral},
		{"无scheme也能解析", "fashionhouse.com/new", theme.CategoryClothing},
		{"大写URL统一小写", "https://WWW.CHOCOLATE.COM/", theme.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.url); got != tt.expected {
				t.Errorf("Classify(%q) = %q, 期望 %q", tt.url, got, tt.expected)
			}
		})
	}
}

// TestClassifyQueryExclusion 测试查询串排除规则
// 关键词出现在路径但同时出现在查询串 → 不算路径命中（避免追踪参数误判）
func TestClassifyQueryExclusion(t *testing.T) {
	c := New(testRules())

	t.Run("查询串含同一关键词时路径不命中", func(t *testing.T) {
		got := c.Classify("https://www.example.com/candy/list?ref=candy")
		if got != theme.CategoryGeneral {
			t.Errorf("Classify = %q, 期望 general（查询串排除）", got)
		}
	})

	t.Run("查询串含其他关键词不影响", func(t *testing.T) {
		got := c.Classify("https://www.example.com/candy/list?ref=home")
		if got != theme.CategoryFood {
			t.Errorf("Classify = %q, 期望 food", got)
		}
	})

	t.Run("域名命中不受查询串影响", func(t *testing.T) {
		got := c.Classify("https://www.chocolate.com/?utm=chocolate")
		if got != theme.CategoryFood {
			t.Errorf("Classify = %q, 期望 food（域名命中优先）", got)
		}
	})
}

// TestClassifyPriority 测试优先级顺序：先声明的分类先赢
func TestClassifyPriority(t *testing.T) {
	rules := theme.URLRules{
		Priority: []theme.Category{theme.CategoryClothing, theme.CategoryFood},
		Keywords: map[theme.Category][]string{
			theme.CategoryClothing: {"sweet"},
			theme.CategoryFood:     {"sweet"},
		},
	}
	c := New(rules)

	got := c.Classify("https://www.example.com/sweet")
	if got != theme.CategoryClothing {
		t.Errorf("Classify = %q, 期望 clothing（优先级在前）", got)
	}
}

// TestClassifyGeneralNeverMatches 测试 general 即使出现在规则中也不参与匹配
func TestClassifyGeneralNeverMatches(t *testing.T) {
	rules := theme.URLRules{
		Priority: []theme.Category{theme.CategoryGeneral, theme.CategoryFood},
		Keywords: map[theme.Category][]string{
			theme.CategoryGeneral: {"example"},
			theme.CategoryFood:    {"chocolate"},
		},
	}
	c := New(rules)

	got := c.Classify("https://www.example.com/chocolate")
	if got != theme.CategoryFood {
		t.Errorf("Classify = %q, 期望 food（general 被跳过）", got)
	}
}

// TestClassifyDeterministic 测试确定性：同一输入多次结果一致
func TestClassifyDeterministic(t *testing.T) {
	c := New(testRules())
	url := "https://www.chocolateworld.com/sweet/deals"

	first := c.Classify(url)
	for i := 0; i < 10; i++ {
		if got := c.Classify(url); got != first {
			t.Fatalf("第 %d 次分类结果 %q 与首次 %q 不一致", i, got, first)
		}
	}
}
