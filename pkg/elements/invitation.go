package elements

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/utils"
)

// InvitationID 邀请弹窗元素的固定键
const InvitationID = "invitation"

// InvitationCallbacks 邀请弹窗的按钮回调
type InvitationCallbacks struct {
	OnAccept  func() // "进来吧"回调
	OnDecline func() // "不了"回调
}

// Invitation 开场邀请弹窗
//
// 居中面板：幽灵 + 主题名 + 邀请文案 + 接受/拒绝两个按钮。
// 点击任一按钮触发回调，弹窗的移除由编排器完成。
type Invitation struct {
	style     Style
	callbacks InvitationCallbacks

	panel      utils.Rect
	acceptBtn  utils.Rect
	declineBtn utils.Rect

	tick int
}

// NewInvitation 构造邀请弹窗并完成布局
func NewInvitation(style Style, callbacks InvitationCallbacks) *Invitation {
	const (
		panelW = 360.0
		panelH = 280.0
		btnW   = 140.0
		btnH   = 44.0
	)
	px := (style.W - panelW) / 2
	py := (style.H - panelH) / 2
	return &Invitation{
		style:      style,
		callbacks:  callbacks,
		panel:      utils.Rect{X: px, Y: py, W: panelW, H: panelH},
		acceptBtn:  utils.Rect{X: px + 30, Y: py + panelH - 70, W: btnW, H: btnH},
		declineBtn: utils.Rect{X: px + panelW - 30 - btnW, Y: py + panelH - 70, W: btnW, H: btnH},
	}
}

func (m *Invitation) ID() string { return InvitationID }

func (m *Invitation) Step() {
	m.tick++
}

// HandleInput 命中测试两个按钮
// 弹窗是模态的：面板外的点击也被消费，防止穿透到下层
func (m *Invitation) HandleInput(in utils.InputState) bool {
	switch {
	case m.acceptBtn.Contains(in.X, in.Y):
		if m.callbacks.OnAccept != nil {
			m.callbacks.OnAccept()
		}
	case m.declineBtn.Contains(in.X, in.Y):
		if m.callbacks.OnDecline != nil {
			m.callbacks.OnDecline()
		}
	}
	return true
}

func (m *Invitation) Draw(dst *ebiten.Image) {
	// 淡入
	alpha := utils.Clamp01(float64(m.tick) / 20.0)
	ghost.DrawDim(dst, 0.5*alpha)
	drawPanel(dst, m.panel, m.style, alpha)

	cx := m.panel.X + m.panel.W/2
	ghost.Draw(dst, cx, m.panel.Y+70, 0.9, ghost.ParseEmotion(m.style.Theme.GhostEmotion), alpha)

	drawCenteredText(dst, m.style.Theme.ThemeName, m.style.Face, cx, m.panel.Y+128,
		color.RGBA{255, 255, 255, 255}, alpha)
	drawCenteredText(dst, "有个幽灵想借用你的屏幕一会儿", m.style.Face, cx, m.panel.Y+158,
		color.RGBA{210, 210, 220, 255}, alpha)

	drawButton(dst, m.acceptBtn, "进来吧", "", m.style, alpha)
	drawButton(dst, m.declineBtn, "不了", "", m.style, alpha)
}
