// Package overlay 提供叠加层宿主：按键控管理一组绘制元素。
//
// 每个元素有唯一 ID，Set 同键替换（保留原有层级），Remove 幂等。
// 层级即插入顺序：后插入的元素绘制在上面，输入分发则从上往下，
// 第一个消费点击的元素终止分发。
//
// 宿主带就绪门闸：资源加载完成前 Step/Draw 都是无操作，避免
// 元素在字体或配置就绪前访问它们。
package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/utils"
)

// Element 叠加层中的一个元素
type Element interface {
	// ID 返回元素的唯一键
	ID() string
	// Step 每逻辑帧推进一次
	Step()
	// Draw 绘制当前帧
	Draw(dst *ebiten.Image)
}

// Clickable 需要接收点击的元素额外实现此接口
// HandleInput 返回 true 表示消费了本次输入
type Clickable interface {
	HandleInput(in utils.InputState) bool
}

// Host 叠加层宿主
type Host struct {
	w, h     float64
	ready    bool
	elements []Element // 插入顺序即绘制顺序
}

// NewHost 构造指定视口大小的宿主
func NewHost(w, h float64) *Host {
	return &Host{w: w, h: h}
}

// Size 返回视口尺寸
func (h *Host) Size() (float64, float64) {
	return h.w, h.h
}

// Resize 更新视口尺寸
// 窗口大小变化时由外层调用，非法尺寸忽略
func (h *Host) Resize(w, hgt float64) {
	if w <= 0 || hgt <= 0 {
		return
	}
	h.w = w
	h.h = hgt
}

// SetReady 打开就绪门闸
func (h *Host) SetReady() {
	h.ready = true
}

// Ready 返回门闸是否已打开
func (h *Host) Ready() bool {
	return h.ready
}

// Set 插入或替换元素
// 同键替换保留原有层级，新键追加到最上层
func (h *Host) Set(el Element) {
	if el == nil {
		return
	}
	for i, existing := range h.elements {
		if existing.ID() == el.ID() {
			h.elements[i] = el
			return
		}
	}
	h.elements = append(h.elements, el)
}

// Remove 按键移除元素，键不存在时无操作
func (h *Host) Remove(id string) {
	for i, el := range h.elements {
		if el.ID() == id {
			h.elements = append(h.elements[:i], h.elements[i+1:]...)
			return
		}
	}
}

// Get 按键查找元素
func (h *Host) Get(id string) (Element, bool) {
	for _, el := range h.elements {
		if el.ID() == id {
			return el, true
		}
	}
	return nil, false
}

// Has 返回键是否存在
func (h *Host) Has(id string) bool {
	_, ok := h.Get(id)
	return ok
}

// Clear 移除全部元素
func (h *Host) Clear() {
	h.elements = nil
}

// Len 返回元素数量
func (h *Host) Len() int {
	return len(h.elements)
}

// Step 推进全部元素一帧，并把点击分发给最上层的消费者
// 输入由调用方采集后传入，宿主本身不接触输入设备
func (h *Host) Step(in utils.InputState) {
	if !h.ready {
		return
	}
	if in.JustPressed {
		// 从上往下分发，第一个消费者终止
		for i := len(h.elements) - 1; i >= 0; i-- {
			if c, ok := h.elements[i].(Clickable); ok {
				if c.HandleInput(in) {
					break
				}
			}
		}
	}
	// 元素的 Step 可能增删元素，遍历快照
	snapshot := make([]Element, len(h.elements))
	copy(snapshot, h.elements)
	for _, el := range snapshot {
		el.Step()
	}
}

// Draw 按层级绘制全部元素
func (h *Host) Draw(dst *ebiten.Image) {
	if !h.ready {
		return
	}
	for _, el := range h.elements {
		el.Draw(dst)
	}
}
