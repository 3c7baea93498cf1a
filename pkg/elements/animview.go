package elements

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/anim"
)

// AnimationViewID 动画画布元素的固定键
const AnimationViewID = "animation"

// AnimationView 把动画时序器接入叠加层
//
// 时序器完成时触发一次 onDone 回调，由编排器据此切换阶段。
type AnimationView struct {
	seq    *anim.Sequencer
	onDone func()
	fired  bool
}

// NewAnimationView 构造动画画布
func NewAnimationView(seq *anim.Sequencer, onDone func()) *AnimationView {
	return &AnimationView{seq: seq, onDone: onDone}
}

func (v *AnimationView) ID() string { return AnimationViewID }

func (v *AnimationView) Step() {
	v.seq.Step()
	if v.seq.Done() && !v.fired {
		v.fired = true
		if v.onDone != nil {
			v.onDone()
		}
	}
}

func (v *AnimationView) Draw(dst *ebiten.Image) {
	v.seq.Draw(dst)
}
