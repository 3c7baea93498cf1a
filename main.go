package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/app"
	"github.com/decker502/necromirror/pkg/embedded"
)

func main() {
	urlFlag := flag.String("url", "", "要拜访的页面 URL（决定主题分类）")
	loops := flag.Int("loops", 0, "覆盖动画循环次数（0 使用配置值）")
	seed := flag.Int64("seed", 0, "随机种子（0 使用时间种子）")
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	reset := flag.Bool("reset-session", false, "启动前清除本会话的关闭状态")
	flag.Parse()

	// 初始化嵌入资源（必须在 NewApp 之前）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		URL:          *urlFlag,
		Loops:        *loops,
		Seed:         *seed,
		Verbose:      *verbose,
		ResetSession: *reset,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Necronomicon Mirror")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
