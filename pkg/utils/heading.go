package utils

import "math"

// HeadingFrameCount 车辆朝向精灵帧数（7x7 图集覆盖一整圈）
const HeadingFrameCount = 49

// headingFrameStep 每帧覆盖的角度（约 7.346938°）
const headingFrameStep = 360.0 / HeadingFrameCount

// NormalizeDegrees 将角度归一化到 [0, 360)
func NormalizeDegrees(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a = 360 + a
	}
	// -1e-15 这类值加 360 后会舍入为 360
	if a >= 360 {
		a = 0
	}
	return a
}

// HeadingFrameIndex 将朝向角（度）映射到精灵帧索引 [0, 48]
// 非有限值返回 0
func HeadingFrameIndex(angleDegrees float64) int {
	if math.IsNaN(angleDegrees) || math.IsInf(angleDegrees, 0) {
		return 0
	}
	index := int(math.Floor(NormalizeDegrees(angleDegrees) / headingFrameStep))
	if index < 0 {
		return 0
	}
	if index > HeadingFrameCount-1 {
		return HeadingFrameCount - 1
	}
	return index
}

// RadiansToDegrees 弧度转角度
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
