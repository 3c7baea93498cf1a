// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载嵌入配置、分类 URL、
// 装配主题与生命周期编排器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/necromirror/pkg/analytics"
	"github.com/decker502/necromirror/pkg/classifier"
	"github.com/decker502/necromirror/pkg/config"
	"github.com/decker502/necromirror/pkg/embedded"
	"github.com/decker502/necromirror/pkg/lifecycle"
	"github.com/decker502/necromirror/pkg/overlay"
	"github.com/decker502/necromirror/pkg/theme"
	"github.com/decker502/necromirror/pkg/utils"
)

// 逻辑视口大小
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// URL 要拜访的页面地址
	URL string
	// Loops 覆盖动画循环次数，0 表示使用配置值
	Loops int
	// Seed 变体与粒子随机种子，0 表示使用时间种子
	Seed int64
	// Verbose 启用详细日志输出
	Verbose bool
	// ResetSession 启动前清除粘性关闭状态
	ResetSession bool
}

// App 应用核心包装器，实现 ebiten.Game 接口
type App struct {
	orchestrator *lifecycle.Orchestrator
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded resources not initialized")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 主题注册表
	themeData, err := embedded.ReadFile("data/themes.yaml")
	if err != nil {
		return nil, fmt.Errorf("主题配置加载失败: %w", err)
	}
	registry, err := theme.NewRegistry(themeData, rng)
	if err != nil {
		return nil, fmt.Errorf("主题注册表构建失败: %w", err)
	}

	// 引擎时序配置
	engineCfg := config.DefaultEngineConfig()
	if engineData, err := embedded.ReadFile("data/engine.yaml"); err == nil {
		if loaded, err := config.LoadEngineConfig(engineData); err == nil {
			engineCfg = loaded
		} else {
			log.Printf("[App] Warning: invalid engine config: %v (using defaults)", err)
		}
	}
	if cfg.Loops > 0 {
		engineCfg.MaxLoops = cfg.Loops
	}

	// URL 分类
	cls := classifier.New(registry.Rules())
	category := cls.Classify(cfg.URL)
	desc := registry.Resolve(category)
	log.Printf("[App] url=%q category=%s theme=%q variant=%s",
		cfg.URL, category, desc.ThemeName, registry.Variant())

	// 会话存储：gdata 打开失败降级为仅内存
	var manager *gdata.Manager
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	if m, err := gdata.Open(gdata.Config{AppName: "necromirror"}); err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (session state is memory-only)", err)
	} else {
		manager = m
	}
	session := lifecycle.NewSessionStore(manager)
	if cfg.ResetSession {
		session.Reset()
	}

	banner := bannerText(cfg.URL)
	orchestrator := lifecycle.NewOrchestrator(lifecycle.Options{
		Host:       overlay.NewHost(ScreenWidth, ScreenHeight),
		Theme:      desc,
		Variant:    registry.Variant(),
		Config:     engineCfg,
		Session:    session,
		Collector:  analytics.NewLogCollector(),
		Face:       LoadFace(),
		BannerText: banner,
		Rng:        rng,
	})
	orchestrator.Start()

	return &App{orchestrator: orchestrator, verbose: cfg.Verbose}, nil
}

// LoadFace 返回内置的界面字体
// 文案含中文，使用 bitmapfont 的东亚字形变体保证 CJK 可渲染
func LoadFace() text.Face {
	return text.NewGoXFace(bitmapfont.FaceEA)
}

// bannerText 由公司名生成动画横幅文案
func bannerText(rawURL string) string {
	if company := classifier.CompanyName(rawURL); company != "" {
		return fmt.Sprintf("%s 的东西现在归我了", company)
	}
	return "这里的东西现在归我了"
}

// Update 每逻辑帧推进一次编排器
func (a *App) Update() error {
	a.orchestrator.Step(utils.GetInputState())
	return nil
}

// Draw 绘制叠加层
func (a *App) Draw(screen *ebiten.Image) {
	a.orchestrator.Draw(screen)
}

// Layout 返回逻辑屏幕大小
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Phase 返回当前生命周期阶段
func (a *App) Phase() lifecycle.Phase {
	return a.orchestrator.Phase()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
