package app

import "testing"

// TestLoadFace 界面字体必须可加载，否则所有文字不可见
func TestLoadFace(t *testing.T) {
	if LoadFace() == nil {
		t.Fatal("LoadFace 返回 nil")
	}
}

// TestBannerText 测试横幅文案的公司名模板
func TestBannerText(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"带公司名", "https://www.chocolateworld.com/deals", "Chocolateworld 的东西现在归我了"},
		{"空URL用通用文案", "", "这里的东西现在归我了"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bannerText(tt.url); got != tt.expected {
				t.Errorf("bannerText(%q) = %q, 期望 %q", tt.url, got, tt.expected)
			}
		})
	}
}
