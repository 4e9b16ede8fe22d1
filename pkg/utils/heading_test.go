package utils

import (
	"math"
	"testing"
)

// TestHeadingFrameIndex 测试朝向角到精灵帧的映射
func TestHeadingFrameIndex(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"零度", 0, 0},
		{"第一帧末尾", 7.3, 0},
		{"第二帧开头", 7.35, 1},
		{"九十度", 90, 12},
		{"一百八十度", 180, 24},
		{"接近一整圈", 359.999, 48},
		{"一整圈", 360, 0},
		{"负九十度", -90, 36},
		{"负极小值", -1e-15, 0},
		{"多圈", 720 + 90, 12},
		{"负多圈", -720 - 90, 36},
		{"NaN", math.NaN(), 0},
		{"正无穷", math.Inf(1), 0},
		{"负无穷", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingFrameIndex(tt.angle); got != tt.want {
				t.Errorf("HeadingFrameIndex(%v) = %d, 期望 %d", tt.angle, got, tt.want)
			}
		})
	}
}

// TestHeadingFrameIndex_BoundedAndMonotonic 任意角度结果在 [0, 48]，一圈内单调不减
func TestHeadingFrameIndex_BoundedAndMonotonic(t *testing.T) {
	for a := -10000.0; a <= 10000; a += 0.37 {
		idx := HeadingFrameIndex(a)
		if idx < 0 || idx > HeadingFrameCount-1 {
			t.Fatalf("HeadingFrameIndex(%v) = %d out of range", a, idx)
		}
	}

	prev := 0
	for a := 0.0; a < 360; a += 0.01 {
		idx := HeadingFrameIndex(a)
		if idx < prev {
			t.Fatalf("not monotonic at %v: %d < %d", a, idx, prev)
		}
		prev = idx
	}
	if prev != HeadingFrameCount-1 {
		t.Errorf("sweep should end on the last frame, got %d", prev)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{-45, 315},
		{360, 0},
		{-360, 0},
		{725, 5},
	}

	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
