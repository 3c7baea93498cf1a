package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 无字体时的宽度估算参数（像素）
// 字体资源加载失败时横幅仍需排版，使用粗略估算保证布局不崩
const (
	approxNarrowWidth = 14.0 // ASCII 等窄字符
	approxWideWidth   = 26.0 // CJK 等宽字符
)

// WrapText 将文本按指定宽度自动换行
//
// 换行规则：
//   - 优先在空格处按词断行（英文文案的主要场景）
//   - 单词超过最大宽度时按字符强制断行（支持中文和超长单词）
//   - 任意长度的输入都能产出结果，不会失败
//
// 参数：
//   - textStr: 要换行的文本
//   - face: 字体，可为 nil（降级为估算宽度）
//   - maxWidth: 最大行宽（像素）
//
// 返回：
//   - []string: 换行后的行数组，至少包含一个元素
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if MeasureTextWidth(testLine, face) <= maxWidth {
			currentLine = testLine
			continue
		}

		// 当前行放不下这个词
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽 → 按字符强制断行
		if MeasureTextWidth(word, face) > maxWidth {
			lines, currentLine = breakLongWord(lines, word, face, maxWidth)
		} else {
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// breakLongWord 将超宽的"单词"（含无空格的 CJK 文本）按字符断行
// 返回已完成的行和剩余的未满行
func breakLongWord(lines []string, word string, face text.Face, maxWidth float64) ([]string, string) {
	currentLine := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)

		testLine := currentLine + char
		if MeasureTextWidth(testLine, face) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = char
		} else {
			currentLine = testLine
		}
		word = word[size:]
	}
	return lines, currentLine
}

// MeasureTextWidth 测量文本宽度
// face 为 nil 时按字符宽度估算（字体加载失败时的降级路径）
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" {
		return 0
	}
	if face == nil {
		return estimateTextWidth(textStr)
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}

// estimateTextWidth 无字体时的粗略宽度估算
func estimateTextWidth(textStr string) float64 {
	width := 0.0
	for _, r := range textStr {
		if r < unicode.MaxASCII {
			width += approxNarrowWidth
		} else {
			width += approxWideWidth
		}
	}
	return width
}
