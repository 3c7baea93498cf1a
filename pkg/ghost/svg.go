package ghost

import (
	"fmt"
	"strings"
)

// svgExpression SVG 路径下的表情参数表
// 坐标基于 80x90 的 viewBox，原点在左上角
type svgExpression struct {
	leftEye      svgEye
	rightEye     svgEye
	mouthPath    string // SVG path 指令
	eyebrowLeft  string // 为空表示无眉毛
	eyebrowRight string
}

// svgEye 椭圆眼睛参数
type svgEye struct {
	cx, cy, rx, ry float64
}

// svgExpressions 全部表情的 SVG 参数
// 与画布路径（canvas.go）保持同一设计意图：
// 细眼+挑眉 = 得意系，大眼+下弯弧 = 开心系
var svgExpressions = map[Emotion]svgExpression{
	EmotionMysterious: {
		leftEye:   svgEye{30, 32, 4, 6},
		rightEye:  svgEye{50, 32, 4, 6},
		mouthPath: "M35,48 Q40,52 45,48",
	},
	EmotionAdventurous: {
		leftEye:   svgEye{30, 30, 5, 7},
		rightEye:  svgEye{50, 30, 5, 7},
		mouthPath: "M32,48 Q40,56 48,48",
	},
	EmotionConfident: {
		leftEye:   svgEye{30, 32, 5, 6},
		rightEye:  svgEye{50, 32, 5, 6},
		mouthPath: "M30,48 Q40,54 50,48",
	},
	EmotionDelighted: {
		leftEye:   svgEye{30, 30, 4, 7},
		rightEye:  svgEye{50, 30, 4, 7},
		mouthPath: "M28,46 Q40,58 52,46",
	},
	EmotionSmug: {
		leftEye:      svgEye{30, 32, 3, 5},
		rightEye:     svgEye{50, 32, 3, 5},
		mouthPath:    "M32,48 Q40,52 48,48",
		eyebrowLeft:  "M26,26 L34,28",
		eyebrowRight: "M46,28 L54,26",
	},
	EmotionDefiant: {
		leftEye:      svgEye{30, 30, 5, 6},
		rightEye:     svgEye{50, 30, 5, 6},
		mouthPath:    "M30,50 L50,50",
		eyebrowLeft:  "M26,24 L34,26",
		eyebrowRight: "M46,26 L54,24",
	},
}

// SVG 生成幽灵的 SVG 标记
//
// 与画布路径接受相同的语义参数（表情、主色）。
// 未在参数表中的表情（happy/shy/evil 是画布动画专用标签）
// 映射到最接近的 SVG 表情。
func SVG(emotion Emotion, primaryColor string) string {
	expr, ok := svgExpressions[emotion]
	if !ok {
		switch emotion {
		case EmotionHappy:
			expr = svgExpressions[EmotionDelighted]
		case EmotionEvil:
			expr = svgExpressions[EmotionSmug]
		default:
			expr = svgExpressions[EmotionMysterious]
		}
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 80 90" xmlns="http://www.w3.org/2000/svg">`)

	// 身体渐变
	b.WriteString(`<defs><radialGradient id="ghostGradient" cx="50%" cy="40%">`)
	b.WriteString(`<stop offset="0%" stop-color="#ffffff" stop-opacity="1"/>`)
	b.WriteString(`<stop offset="70%" stop-color="#f8f8f8" stop-opacity="0.98"/>`)
	b.WriteString(`<stop offset="100%" stop-color="#e8e8e8" stop-opacity="0.95"/>`)
	b.WriteString(`</radialGradient></defs>`)

	// 身体：上圆下波浪
	b.WriteString(`<path class="ghost-body" d="M40,8 Q15,8 15,35 Q15,50 15,62 L15,70 ` +
		`Q20,65 25,70 Q30,75 35,70 Q40,65 40,70 Q40,65 45,70 Q50,75 55,70 Q60,65 65,70 ` +
		`L65,62 Q65,50 65,35 Q65,8 40,8 Z" fill="url(#ghostGradient)" stroke="none"/>`)

	// 头顶高光
	b.WriteString(`<ellipse cx="40" cy="22" rx="18" ry="12" fill="#ffffff" opacity="0.4"/>`)

	// 眼睛
	writeEye := func(e svgEye) {
		fmt.Fprintf(&b, `<ellipse class="ghost-eye" cx="%g" cy="%g" rx="%g" ry="%g" fill="#2a2a2a"/>`,
			e.cx, e.cy, e.rx, e.ry)
	}
	writeEye(expr.leftEye)
	writeEye(expr.rightEye)

	// 眉毛
	if expr.eyebrowLeft != "" {
		fmt.Fprintf(&b, `<path d="%s" stroke="#2a2a2a" stroke-width="2.5" stroke-linecap="round" fill="none"/>`, expr.eyebrowLeft)
		fmt.Fprintf(&b, `<path d="%s" stroke="#2a2a2a" stroke-width="2.5" stroke-linecap="round" fill="none"/>`, expr.eyebrowRight)
	}

	// 嘴
	fmt.Fprintf(&b, `<path d="%s" stroke="#2a2a2a" stroke-width="2.5" stroke-linecap="round" fill="none"/>`, expr.mouthPath)

	// 腮红（愉悦表情）
	if emotion.hasBlush() {
		b.WriteString(`<ellipse cx="22" cy="42" rx="5" ry="4" fill="#ffb3d9" opacity="0.5"/>`)
		b.WriteString(`<ellipse cx="58" cy="42" rx="5" ry="4" fill="#ffb3d9" opacity="0.5"/>`)
	}

	// 高光点（主色点缀）
	fmt.Fprintf(&b, `<circle cx="26" cy="28" r="2" fill="%s" opacity="0.6"/>`, svgColor(primaryColor))
	fmt.Fprintf(&b, `<circle cx="46" cy="26" r="2" fill="%s" opacity="0.6"/>`, svgColor(primaryColor))

	b.WriteString(`</svg>`)
	return b.String()
}

// svgColor 校验颜色字符串，非法时回落到白色
// 输出会嵌入 SVG 属性，不能原样透传任意输入
func svgColor(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return "#ffffff"
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return "#ffffff"
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return "#ffffff"
		}
	}
	return s
}
