// Package utils 提供通用工具函数
package utils

import "math"

// 缓动函数
//
// 用于控制动画阶段内的速度曲线。所有函数接受进度值 t ∈ [0, 1]，
// 返回缓动后的进度 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束快（用于出场加速飞离）
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始快，结束慢（用于滑向目标）
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 特点：比 Quad 更明显的减速（用于幽灵飞向选项卡）
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平滑（用于漂浮/呼吸类循环运动的包络）
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值截断到 [0, 1]
// 时序计算中的进度值在阶段边界可能略微越界
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
