package overlay

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/utils"
)

// fakeElement 记录调用次数的测试元素
type fakeElement struct {
	id      string
	steps   int
	consume bool // 是否消费点击
	clicked bool
}

func (f *fakeElement) ID() string         { return f.id }
func (f *fakeElement) Step()              { f.steps++ }
func (f *fakeElement) Draw(*ebiten.Image) {}

func (f *fakeElement) HandleInput(utils.InputState) bool {
	f.clicked = true
	return f.consume
}

func TestHostSetReplacesSameID(t *testing.T) {
	h := NewHost(800, 600)
	a := &fakeElement{id: "ghost"}
	b := &fakeElement{id: "banner"}
	h.Set(a)
	h.Set(b)

	replacement := &fakeElement{id: "ghost"}
	h.Set(replacement)

	if h.Len() != 2 {
		t.Fatalf("同键替换后元素数量 = %d, 期望 2", h.Len())
	}
	got, ok := h.Get("ghost")
	if !ok || got != Element(replacement) {
		t.Error("同键 Set 应替换原元素")
	}
	// 替换保留原有层级：ghost 仍在 banner 之下
	if h.elements[0].ID() != "ghost" || h.elements[1].ID() != "banner" {
		t.Error("同键替换不应改变层级顺序")
	}
}

func TestHostRemoveIdempotent(t *testing.T) {
	h := NewHost(800, 600)
	h.Set(&fakeElement{id: "ghost"})
	h.Remove("ghost")
	h.Remove("ghost") // 重复移除无操作
	h.Remove("never-existed")
	if h.Len() != 0 {
		t.Errorf("移除后元素数量 = %d, 期望 0", h.Len())
	}
}

func TestHostReadyGate(t *testing.T) {
	h := NewHost(800, 600)
	el := &fakeElement{id: "ghost"}
	h.Set(el)

	h.Step(utils.InputState{})
	if el.steps != 0 {
		t.Error("就绪前元素不应被推进")
	}

	h.SetReady()
	h.Step(utils.InputState{})
	if el.steps != 1 {
		t.Errorf("就绪后元素应被推进，Step 次数 = %d", el.steps)
	}
}

func TestHostInputTopDown(t *testing.T) {
	h := NewHost(800, 600)
	h.SetReady()
	bottom := &fakeElement{id: "bottom", consume: true}
	top := &fakeElement{id: "top", consume: true}
	h.Set(bottom)
	h.Set(top)

	h.Step(utils.InputState{JustPressed: true, X: 10, Y: 10})
	if !top.clicked {
		t.Error("最上层元素应收到点击")
	}
	if bottom.clicked {
		t.Error("点击被上层消费后不应继续下发")
	}
}

func TestHostInputPassThrough(t *testing.T) {
	h := NewHost(800, 600)
	h.SetReady()
	bottom := &fakeElement{id: "bottom", consume: true}
	top := &fakeElement{id: "top", consume: false}
	h.Set(bottom)
	h.Set(top)

	h.Step(utils.InputState{JustPressed: true})
	if !top.clicked || !bottom.clicked {
		t.Error("未消费的点击应继续下发到下层")
	}
}

func TestHostClear(t *testing.T) {
	h := NewHost(800, 600)
	h.Set(&fakeElement{id: "a"})
	h.Set(&fakeElement{id: "b"})
	h.Clear()
	if h.Len() != 0 || h.Has("a") {
		t.Error("Clear 应移除全部元素")
	}
}

// TestHostResize 测试视口尺寸更新与非法尺寸忽略
func TestHostResize(t *testing.T) {
	h := NewHost(800, 600)

	h.Resize(1024, 768)
	if w, hgt := h.Size(); w != 1024 || hgt != 768 {
		t.Errorf("Size = (%v, %v), 期望 (1024, 768)", w, hgt)
	}

	h.Resize(0, -100)
	if w, hgt := h.Size(); w != 1024 || hgt != 768 {
		t.Errorf("非法尺寸应被忽略, 实际 (%v, %v)", w, hgt)
	}
}
