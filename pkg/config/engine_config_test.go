package config

import (
	"math"
	"testing"
)

// TestDefaultEngineConfig 测试默认配置数值
func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()

	if cfg.MaxLoops != 1 {
		t.Errorf("MaxLoops = %d, 期望 1", cfg.MaxLoops)
	}
	if cfg.Flight.PauseTicks != 180 {
		t.Errorf("Flight.PauseTicks = %d, 期望 180", cfg.Flight.PauseTicks)
	}
	if math.Abs(cfg.Flight.ExitAccel-0.1) > 1e-9 {
		t.Errorf("Flight.ExitAccel = %f, 期望 0.1", cfg.Flight.ExitAccel)
	}
	if cfg.Confidence.FlashTicks != 80 {
		t.Errorf("Confidence.FlashTicks = %d, 期望 80", cfg.Confidence.FlashTicks)
	}
	if cfg.Feast.TotalBites != 4 {
		t.Errorf("Feast.TotalBites = %d, 期望 4", cfg.Feast.TotalBites)
	}
	if cfg.Jumpscare.PumpkinCount != 30 {
		t.Errorf("Jumpscare.PumpkinCount = %d, 期望 30", cfg.Jumpscare.PumpkinCount)
	}
}

// TestLoadEngineConfig 测试 YAML 加载与默认值合并
func TestLoadEngineConfig(t *testing.T) {
	t.Run("部分覆盖保留默认值", func(t *testing.T) {
		data := `
maxLoops: 3
flight:
  pauseTicks: 90
`
		cfg, err := LoadEngineConfig([]byte(data))
		if err != nil {
			t.Fatalf("LoadEngineConfig 失败: %v", err)
		}
		if cfg.MaxLoops != 3 {
			t.Errorf("MaxLoops = %d, 期望 3", cfg.MaxLoops)
		}
		if cfg.Flight.PauseTicks != 90 {
			t.Errorf("Flight.PauseTicks = %d, 期望 90", cfg.Flight.PauseTicks)
		}
		// 未覆盖的字段保留默认值
		if cfg.Flight.EntrySpeed != 3.0 {
			t.Errorf("Flight.EntrySpeed = %f, 期望默认值 3.0", cfg.Flight.EntrySpeed)
		}
		if cfg.Confidence.ShyTicks != 120 {
			t.Errorf("Confidence.ShyTicks = %d, 期望默认值 120", cfg.Confidence.ShyTicks)
		}
	})

	t.Run("非法YAML返回错误", func(t *testing.T) {
		if _, err := LoadEngineConfig([]byte("flight: [broken")); err == nil {
			t.Error("期望返回错误，实际为 nil")
		}
	})

	t.Run("非法数值被修正", func(t *testing.T) {
		data := `
maxLoops: 0
feast:
  biteIntervalTicks: -10
  totalBites: 0
`
		cfg, err := LoadEngineConfig([]byte(data))
		if err != nil {
			t.Fatalf("LoadEngineConfig 失败: %v", err)
		}
		if cfg.MaxLoops != 1 {
			t.Errorf("非法 maxLoops 应修正为 1，实际 %d", cfg.MaxLoops)
		}
		if cfg.Feast.BiteIntervalTicks != 60 {
			t.Errorf("非法 biteIntervalTicks 应修正为 60，实际 %d", cfg.Feast.BiteIntervalTicks)
		}
		if cfg.Feast.TotalBites != 4 {
			t.Errorf("非法 totalBites 应修正为 4，实际 %d", cfg.Feast.TotalBites)
		}
	})
}
