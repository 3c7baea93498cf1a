// Package config 提供引擎数据配置的结构定义和加载。
//
// 所有时序字段单位为逻辑帧（tick，60 TPS）。配置来自嵌入的
// data/engine.yaml；缺失字段回落到默认值，保证任何残缺配置
// 都能产出可用的引擎参数。
package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// FlightConfig 飞行动画（幽灵驾驶飞机）时序配置
type FlightConfig struct {
	EntrySpeed      float64 `yaml:"entrySpeed"`      // 入场飞行速度（像素/帧）
	ExitSpeed       float64 `yaml:"exitSpeed"`       // 出场起始速度
	ExitAccel       float64 `yaml:"exitAccel"`       // 出场加速度（每帧递增）
	PauseTicks      int     `yaml:"pauseTicks"`      // 中央悬停时长
	BannerFadeTicks int     `yaml:"bannerFadeTicks"` // 横幅淡入/淡出时长
}

// ConfidenceConfig 自信变身动画时序配置
type ConfidenceConfig struct {
	ShyTicks        int `yaml:"shyTicks"`        // 角落害羞阶段时长
	FlashTicks      int `yaml:"flashTicks"`      // 闪光变身阶段时长
	ConfidentTicks  int `yaml:"confidentTicks"`  // 自信展示阶段时长
	ParticleCount   int `yaml:"particleCount"`   // 自信光环粒子数量
	BannerFadeTicks int `yaml:"bannerFadeTicks"` // 横幅淡入/淡出时长
}

// FeastConfig 吃巧克力动画时序配置
type FeastConfig struct {
	EntrySpeed        float64 `yaml:"entrySpeed"`        // 入场速度
	BiteIntervalTicks int     `yaml:"biteIntervalTicks"` // 每口间隔
	TotalBites        int     `yaml:"totalBites"`        // 吃完需要的口数
	SatisfiedTicks    int     `yaml:"satisfiedTicks"`    // 满足阶段时长
	BannerFadeTicks   int     `yaml:"bannerFadeTicks"`   // 横幅淡入/淡出时长
}

// JumpscareConfig 万圣节惊吓动画时序配置
type JumpscareConfig struct {
	ApproachSpeed   float64 `yaml:"approachSpeed"`   // 接近速度
	ScareTicks      int     `yaml:"scareTicks"`      // 放大惊吓阶段时长
	RainTicks       int     `yaml:"rainTicks"`       // 南瓜雨阶段时长
	PumpkinCount    int     `yaml:"pumpkinCount"`    // 南瓜数量
	BannerFadeTicks int     `yaml:"bannerFadeTicks"` // 横幅淡入/淡出时长
}

// QuizConfig 问答流程时序配置
type QuizConfig struct {
	TransitionTicks int `yaml:"transitionTicks"` // 选项选中后的过渡时长
	FadeTicks       int `yaml:"fadeTicks"`       // 界面淡入/淡出时长
}

// LifecycleConfig 生命周期编排时序配置
type LifecycleConfig struct {
	ShakeTicks   int `yaml:"shakeTicks"`   // 页面抖动时长
	KickerTicks  int `yaml:"kickerTicks"`  // 顶部通知横幅显示时长
	RewardTicks  int `yaml:"rewardTicks"`  // 奖励消息显示时长
	GoodbyeTicks int `yaml:"goodbyeTicks"` // 告别消息显示时长
	FadeTicks    int `yaml:"fadeTicks"`    // 元素淡出时长
}

// EngineConfig 动画引擎完整配置
type EngineConfig struct {
	MaxLoops   int              `yaml:"maxLoops"` // 动画循环次数，完成后移交问答
	Flight     FlightConfig     `yaml:"flight"`
	Confidence ConfidenceConfig `yaml:"confidence"`
	Feast      FeastConfig      `yaml:"feast"`
	Jumpscare  JumpscareConfig  `yaml:"jumpscare"`
	Quiz       QuizConfig       `yaml:"quiz"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
}

// DefaultEngineConfig 返回默认引擎配置
// 数值与原版动画引擎保持一致
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxLoops: 1,
		Flight: FlightConfig{
			EntrySpeed:      3.0,
			ExitSpeed:       5.0,
			ExitAccel:       0.1,
			PauseTicks:      180,
			BannerFadeTicks: 30,
		},
		Confidence: ConfidenceConfig{
			ShyTicks:        120,
			FlashTicks:      80,
			ConfidentTicks:  300,
			ParticleCount:   30,
			BannerFadeTicks: 30,
		},
		Feast: FeastConfig{
			EntrySpeed:        4.0,
			BiteIntervalTicks: 60,
			TotalBites:        4,
			SatisfiedTicks:    180,
			BannerFadeTicks:   30,
		},
		Jumpscare: JumpscareConfig{
			ApproachSpeed:   5.0,
			ScareTicks:      120,
			RainTicks:       300,
			PumpkinCount:    30,
			BannerFadeTicks: 30,
		},
		Quiz: QuizConfig{
			TransitionTicks: 48,
			FadeTicks:       30,
		},
		Lifecycle: LifecycleConfig{
			ShakeTicks:   36,
			KickerTicks:  300,
			RewardTicks:  300,
			GoodbyeTicks: 180,
			FadeTicks:    60,
		},
	}
}

// LoadEngineConfig 从 YAML 数据加载引擎配置
//
// 先填充默认值再覆盖，因此缺失字段会保留默认值；
// 解析失败时返回错误（调用方可选择退回 DefaultEngineConfig）。
func LoadEngineConfig(data []byte) (*EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize 将明显非法的数值修正为默认值
// 配置错误不应导致除零或死循环
func (c *EngineConfig) sanitize() {
	def := DefaultEngineConfig()
	if c.MaxLoops < 1 {
		log.Printf("[Config] maxLoops=%d invalid, using %d", c.MaxLoops, def.MaxLoops)
		c.MaxLoops = def.MaxLoops
	}
	if c.Flight.EntrySpeed <= 0 {
		c.Flight.EntrySpeed = def.Flight.EntrySpeed
	}
	if c.Flight.ExitSpeed <= 0 {
		c.Flight.ExitSpeed = def.Flight.ExitSpeed
	}
	if c.Feast.BiteIntervalTicks <= 0 {
		c.Feast.BiteIntervalTicks = def.Feast.BiteIntervalTicks
	}
	if c.Feast.TotalBites <= 0 {
		c.Feast.TotalBites = def.Feast.TotalBites
	}
	if c.Feast.EntrySpeed <= 0 {
		c.Feast.EntrySpeed = def.Feast.EntrySpeed
	}
	if c.Jumpscare.ApproachSpeed <= 0 {
		c.Jumpscare.ApproachSpeed = def.Jumpscare.ApproachSpeed
	}
	if c.Quiz.TransitionTicks <= 0 {
		c.Quiz.TransitionTicks = def.Quiz.TransitionTicks
	}
}
