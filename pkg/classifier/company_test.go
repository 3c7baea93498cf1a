package classifier

import "testing"

func TestCompanyName(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"普通域名", "https://www.chocolateworld.com/sweet/deals", "Chocolateworld"},
		{"无 www 前缀", "https://delta.com", "Delta"},
		{"无 scheme", "nike.com/shoes", "Nike"},
		{"子域名取第一段", "https://shop.united.com", "Shop"},
		{"空输入", "", ""},
		{"纯路径", "/local/file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompanyName(tt.url); got != tt.want {
				t.Errorf("CompanyName(%q) = %q, 期望 %q", tt.url, got, tt.want)
			}
		})
	}
}
