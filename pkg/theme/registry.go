package theme

import (
	"fmt"
	"log"
	"math/rand"

	"gopkg.in/yaml.v3"
)

// registryFile 主题配置的 YAML 结构
// 未知字段会被 yaml.v3 自动忽略（向前兼容）
type registryFile struct {
	URLRules URLRules                 `yaml:"urlRules"`
	Themes   map[Category]*Descriptor `yaml:"themes"`
}

// Registry 主题注册表
// 持有全部主题描述符和 URL 分类规则，加载后只读
type Registry struct {
	themes  map[Category]*Descriptor
	rules   URLRules
	variant Variant
}

// NewRegistry 从 YAML 数据构建注册表
//
// 挑衅文案变体在此处用给定的随机源分配一次（会话级别固定）。
// rng 可为 nil，此时固定使用变体 A（用于测试和可复现运行）。
//
// 参数：
//   - data: 主题配置的 YAML 内容（通常来自 embedded.ReadFile）
//   - rng: 变体分配用随机源，可为 nil
//
// 返回：
//   - *Registry: 注册表实例
//   - error: YAML 解析失败时返回错误
func NewRegistry(data []byte, rng *rand.Rand) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme config: %w", err)
	}

	if len(file.Themes) == 0 {
		return nil, fmt.Errorf("theme config contains no themes")
	}

	// 回填每个描述符的分类字段
	for cat, desc := range file.Themes {
		if desc == nil {
			// 空条目替换为最小描述符，避免后续查找返回 nil
			desc = fallbackDescriptor(cat)
			file.Themes[cat] = desc
		}
		desc.Category = cat
	}

	variant := VariantA
	if rng != nil && rng.Intn(2) == 1 {
		variant = VariantB
	}
	log.Printf("[Theme] Registry loaded: %d themes, kicker variant %s", len(file.Themes), variant)

	return &Registry{
		themes:  file.Themes,
		rules:   file.URLRules,
		variant: variant,
	}, nil
}

// Resolve 查找分类对应的主题描述符
//
// 永远不会失败：
//   - 未知分类 → general 的描述符
//   - general 也缺失 → 内置最小描述符
func (r *Registry) Resolve(cat Category) *Descriptor {
	if desc, ok := r.themes[cat]; ok {
		return desc
	}
	if desc, ok := r.themes[CategoryGeneral]; ok {
		log.Printf("[Theme] Unknown category %q, falling back to general", cat)
		return desc
	}
	log.Printf("[Theme] No general theme configured, using builtin fallback")
	return fallbackDescriptor(CategoryGeneral)
}

// Rules 返回 URL 分类规则
func (r *Registry) Rules() URLRules {
	return r.rules
}

// Variant 返回本次会话的挑衅文案变体
func (r *Registry) Variant() Variant {
	return r.variant
}

// Categories 返回所有已注册的分类（顺序不保证）
func (r *Registry) Categories() []Category {
	cats := make([]Category, 0, len(r.themes))
	for cat := range r.themes {
		cats = append(cats, cat)
	}
	return cats
}

// fallbackDescriptor 内置最小描述符
// 仅在配置数据缺失/损坏时使用，保证 Resolve 永不返回 nil
func fallbackDescriptor(cat Category) *Descriptor {
	return &Descriptor{
		Category:        cat,
		ThemeName:       "Mysterious Visitor",
		PrimaryColor:    "#4c1d95",
		SecondaryColor:  "#a78bfa",
		BackgroundColor: "#140a26",
		GhostEmotion:    "mysterious",
		Animation: AnimationSelector{
			Enabled: true,
			Type:    "flight",
		},
	}
}
