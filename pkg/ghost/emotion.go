// Package ghost 提供幽灵吉祥物的程序化绘制。
//
// 同一套语义参数（表情、颜色、位置、缩放）支持两条渲染路径：
//   - 像素画布路径（canvas.go）：ebiten vector 图元，用于动画序列
//   - 矢量图路径（svg.go）：生成 SVG 标记，用于静态元素插入
//
// 两条路径的设计意图一致（圆润可爱的白色幽灵），
// 具体像素输出允许因渲染面不同而有差异。
package ghost

// Emotion 幽灵的表情标签
// 决定眼睛形状/位置、眉毛有无和嘴型
type Emotion int

const (
	// EmotionMysterious 神秘（默认表情，未知标签的兜底）
	EmotionMysterious Emotion = iota
	// EmotionAdventurous 爱冒险（大眼睛，开口笑）
	EmotionAdventurous
	// EmotionConfident 自信（平视，稳重微笑）
	EmotionConfident
	// EmotionDelighted 愉悦（眯眼大笑，带腮红）
	EmotionDelighted
	// EmotionSmug 得意（细眼，挑眉，坏笑）
	EmotionSmug
	// EmotionDefiant 挑衅（挑眉，抿嘴直线）
	EmotionDefiant
	// EmotionHappy 开心（画布动画吃东西时的张嘴表情）
	EmotionHappy
	// EmotionShy 害羞（小眼睛，小嘴）
	EmotionShy
	// EmotionEvil 坏笑（与 smug 同形，语义区分用）
	EmotionEvil
)

// String 返回表情的配置标签
func (e Emotion) String() string {
	switch e {
	case EmotionMysterious:
		return "mysterious"
	case EmotionAdventurous:
		return "adventurous"
	case EmotionConfident:
		return "confident"
	case EmotionDelighted:
		return "delighted"
	case EmotionSmug:
		return "smug"
	case EmotionDefiant:
		return "defiant"
	case EmotionHappy:
		return "happy"
	case EmotionShy:
		return "shy"
	case EmotionEvil:
		return "evil"
	default:
		return "mysterious"
	}
}

// ParseEmotion 解析表情标签
// 未知标签返回 EmotionMysterious（配置错误不应导致崩溃）
func ParseEmotion(tag string) Emotion {
	switch tag {
	case "mysterious":
		return EmotionMysterious
	case "adventurous":
		return EmotionAdventurous
	case "confident":
		return EmotionConfident
	case "delighted":
		return EmotionDelighted
	case "smug":
		return EmotionSmug
	case "defiant":
		return EmotionDefiant
	case "happy":
		return EmotionHappy
	case "shy":
		return EmotionShy
	case "evil":
		return EmotionEvil
	default:
		return EmotionMysterious
	}
}

// narrowEyes 返回该表情是否使用细长眯眼
func (e Emotion) narrowEyes() bool {
	return e == EmotionSmug || e == EmotionEvil || e == EmotionShy
}

// hasEyebrows 返回该表情是否绘制眉毛
func (e Emotion) hasEyebrows() bool {
	return e == EmotionSmug || e == EmotionEvil || e == EmotionDefiant
}

// hasBlush 返回该表情是否绘制腮红
func (e Emotion) hasBlush() bool {
	return e == EmotionDelighted || e == EmotionHappy
}
