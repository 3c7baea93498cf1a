// Package theme 提供主题注册表：分类 → 主题描述符的静态查找。
//
// 主题数据来自嵌入的 YAML 文档（data/themes.yaml），启动时加载一次，
// 之后只读。查找永远不会失败：未知分类兜底到 general，general 缺失时
// 兜底到内置的最小描述符。
package theme

// Category 页面分类标识
// 用于将 URL 归入一个主题内容分段
type Category string

// 内置分类
const (
	CategoryTransportation Category = "transportation"
	CategoryClothing       Category = "clothing"
	CategoryFood           Category = "food"
	CategoryHalloween      Category = "halloween"
	// CategoryGeneral 兜底分类，任何未匹配的 URL 都归入此类
	CategoryGeneral Category = "general"
)

// Variant 挑衅文案的 A/B 变体标签
// 在注册表加载时随机分配一次，整个会话保持不变，
// 随问答完成事件上报用于后续对比分析
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// Option 谈判问题的一个选项
// Subtitle 和 Icon 为可选字段，缺失时为空字符串
type Option struct {
	Label    string `yaml:"label"`    // 选项标题
	Subtitle string `yaml:"subtitle"` // 副标题（可选）
	Icon     string `yaml:"icon"`     // 图标符号（可选）
	Value    string `yaml:"value"`    // 上报用的不透明取值
}

// NegotiationQuestion 二选一强制选择问题
// 问题在描述符中的顺序即展示顺序
type NegotiationQuestion struct {
	ID       string `yaml:"id"`       // 问题唯一标识
	Question string `yaml:"question"` // 问题文本
	OptionA  Option `yaml:"optionA"`  // 左侧选项
	OptionB  Option `yaml:"optionB"`  // 右侧选项
}

// AnimationSelector 动画选择配置
type AnimationSelector struct {
	Enabled bool   `yaml:"enabled"` // 是否启用动画
	Type    string `yaml:"type"`    // 动画类型标签，由 anim.ParseType 解析
}

// Descriptor 一个分类的完整主题描述符
// 加载后只读，所有组件共享同一实例
type Descriptor struct {
	// Category 在加载时由注册表填充（等于其在 themes 映射中的键）
	Category Category `yaml:"-"`

	ThemeName       string `yaml:"themeName"`       // 展示名称
	PrimaryColor    string `yaml:"primaryColor"`    // 主色（#rrggbb）
	SecondaryColor  string `yaml:"secondaryColor"`  // 辅助色
	BackgroundColor string `yaml:"backgroundColor"` // 背景色
	GhostEmotion    string `yaml:"ghostEmotion"`    // 幽灵表情标签

	// KickerTexts 挑衅文案的两个版本，索引 0 对应变体 A，1 对应 B
	// 少于两条时变体共用第一条；为空时文案为空字符串
	KickerTexts []string `yaml:"kickerTexts"`

	Animation    AnimationSelector `yaml:"animation"`
	RewardCoupon string            `yaml:"rewardCoupon"` // 奖励优惠码（可选）

	NegotiationQuestions []NegotiationQuestion `yaml:"negotiationQuestions"`
}

// KickerText 返回指定变体的挑衅文案
func (d *Descriptor) KickerText(v Variant) string {
	if len(d.KickerTexts) == 0 {
		return ""
	}
	if v == VariantB && len(d.KickerTexts) > 1 {
		return d.KickerTexts[1]
	}
	return d.KickerTexts[0]
}

// URLRules URL 分类规则
// Priority 定义分类的匹配优先级（不包含 general），
// Keywords 定义每个分类的关键词列表
type URLRules struct {
	Priority []Category            `yaml:"priority"`
	Keywords map[Category][]string `yaml:"keywords"`
}
