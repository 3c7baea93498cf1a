package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 当前帧的输入状态
// 统一处理鼠标和触摸输入，供覆盖层元素做命中检测
type InputState struct {
	// JustPressed 本帧是否刚发生点击/触摸
	JustPressed bool
	// X, Y 指针位置（像素，与命中检测的坐标系一致）
	X, Y float64
}

// GetInputState 获取当前帧的输入状态
// 优先检测触摸（移动设备），其次鼠标
func GetInputState() InputState {
	state := InputState{}

	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		state.JustPressed = true
		state.X, state.Y = float64(x), float64(y)
		return state
	}

	x, y := ebiten.CursorPosition()
	state.X, state.Y = float64(x), float64(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	return state
}

// Rect 屏幕上的矩形区域（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否落在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
