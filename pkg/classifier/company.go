package classifier

import "strings"

// CompanyName 从 URL 中提取公司名
//
// 取域名去掉 www. 后的第一段并首字母大写，用于动画横幅里的
// 称呼（"Chocolateworld 的东西现在归我了"）。提取不到时返回空
// 字符串，调用方应准备无称呼的文案。
func CompanyName(rawURL string) string {
	domain, _, _ := splitURL(rawURL)
	if domain == "" {
		return ""
	}
	domain = strings.TrimPrefix(domain, "www.")
	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
