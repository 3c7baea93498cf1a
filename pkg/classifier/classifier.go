// Package classifier 将页面 URL 分类到主题分类。
//
// 匹配策略（与线上行为保持一致，调整会改变可观测的分类结果）：
//   - 按规则中声明的优先级顺序逐个检查分类，general 永不参与匹配
//   - 域名包含关键词，或关键词包含去掉 www. 前缀的域名 → 命中
//   - 路径包含关键词且查询串中不含同一关键词 → 命中
//     （排除查询串是为了避免追踪参数造成误判）
//   - 第一个命中的分类获胜；全部未命中 → 返回 general
//
// 已知局限：子串匹配存在误判风险（如 "car" 匹配 "scar"），
// 保留原始行为，不做词边界收紧。
package classifier

import (
	"log"
	"net/url"
	"strings"

	"github.com/decker502/necromirror/pkg/theme"
)

// Classifier URL 分类器
// 规则来自主题注册表，构建后只读
type Classifier struct {
	rules theme.URLRules
}

// New 创建分类器
func New(rules theme.URLRules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify 将 URL 分类到一个主题分类
//
// 纯函数：相同输入永远产生相同输出，不会失败。
// 无法解析的输入按兜底分类处理。
func (c *Classifier) Classify(rawURL string) theme.Category {
	domain, path, query := splitURL(rawURL)

	for _, cat := range c.rules.Priority {
		// general 是兜底分类，永不参与关键词匹配
		if cat == theme.CategoryGeneral {
			continue
		}
		for _, keyword := range c.rules.Keywords[cat] {
			if matchKeyword(keyword, domain, path, query) {
				log.Printf("[Classifier] %q matched category %s (keyword %q)", rawURL, cat, keyword)
				return cat
			}
		}
	}

	log.Printf("[Classifier] No category matched for %q, using general", rawURL)
	return theme.CategoryGeneral
}

// matchKeyword 检查单个关键词是否命中
// 优先级：域名匹配 > 路径匹配（路径命中要求查询串中不含同一关键词）
func matchKeyword(keyword, domain, path, query string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}

	// 域名匹配：双向包含
	// "united.com" 命中 "www.united.com"，"delta" 命中 "delta.com"
	if domain != "" {
		bare := strings.TrimPrefix(domain, "www.")
		if strings.Contains(domain, kw) || (bare != "" && strings.Contains(kw, bare)) {
			return true
		}
	}

	// 路径匹配，排除出现在查询串中的关键词
	if strings.Contains(path, kw) && !strings.Contains(query, kw) {
		return true
	}

	return false
}

// splitURL 将原始 URL 拆分为小写的域名、路径和查询串
// 无 scheme 的输入会补上 https:// 再解析；完全无法解析时
// 整个字符串按路径处理（保证分类器永不失败）
func splitURL(rawURL string) (domain, path, query string) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", "", ""
	}

	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return "", strings.ToLower(raw), ""
	}

	return strings.ToLower(u.Hostname()), strings.ToLower(u.Path), strings.ToLower(u.RawQuery)
}
