// ghostsvg 生成幽灵的 SVG 标记并写到标准输出，
// 用于在页面里静态插入幽灵图形或预览各表情。
//
// 用法：
//
//	go run ./cmd/ghostsvg -emotion smug -color "#8b5cf6" > ghost.svg
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/necromirror/pkg/ghost"
)

func main() {
	emotionFlag := flag.String("emotion", "mysterious", "幽灵表情标签")
	colorFlag := flag.String("color", "#8b5cf6", "主题主色（#rrggbb）")
	list := flag.Bool("list", false, "列出全部表情标签后退出")
	flag.Parse()

	if *list {
		for _, tag := range []string{
			"mysterious", "adventurous", "confident",
			"delighted", "smug", "defiant",
		} {
			fmt.Println(tag)
		}
		return
	}

	emotion := ghost.ParseEmotion(*emotionFlag)
	if _, err := fmt.Fprintln(os.Stdout, ghost.SVG(emotion, *colorFlag)); err != nil {
		fmt.Fprintf(os.Stderr, "写出失败: %v\n", err)
		os.Exit(1)
	}
}
