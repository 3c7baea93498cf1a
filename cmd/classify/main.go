// classify 是分类器的命令行调试工具：
// 对每个参数 URL 输出命中的分类和解析到的主题。
//
// 用法：
//
//	go run ./cmd/classify https://www.chocolateworld.com/sweet/deals
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/necromirror/pkg/classifier"
	"github.com/decker502/necromirror/pkg/theme"
)

func main() {
	themesPath := flag.String("themes", "data/themes.yaml", "主题配置文件路径")
	verbose := flag.Bool("verbose", false, "输出匹配细节日志")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "用法: classify [-themes path] <url> [url...]")
		os.Exit(2)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	data, err := os.ReadFile(*themesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取主题配置失败: %v\n", err)
		os.Exit(1)
	}
	registry, err := theme.NewRegistry(data, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "主题注册表构建失败: %v\n", err)
		os.Exit(1)
	}

	cls := classifier.New(registry.Rules())
	for _, rawURL := range flag.Args() {
		category := cls.Classify(rawURL)
		desc := registry.Resolve(category)
		fmt.Printf("%s\t%s\t%s\n", rawURL, category, desc.ThemeName)
	}
}
