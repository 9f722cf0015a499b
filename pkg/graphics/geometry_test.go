package graphics

import (
	"math"
	"testing"
)

func TestSizeIsFinite(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{Width: 100, Height: 50}, true},
		{Size{Width: math.Inf(1), Height: 50}, false},
		{Size{Width: 100, Height: math.Inf(1)}, false},
		{Size{}, true},
	}
	for _, tt := range tests {
		if got := tt.size.IsFinite(); got != tt.want {
			t.Errorf("Size%v.IsFinite() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSizeIsEmpty(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{Width: 100, Height: 50}, false},
		{Size{Width: 0, Height: 50}, true},
		{Size{Width: 100, Height: -1}, true},
		{Size{}, true},
	}
	for _, tt := range tests {
		if got := tt.size.IsEmpty(); got != tt.want {
			t.Errorf("Size%v.IsEmpty() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSizeAspectRatio(t *testing.T) {
	tests := []struct {
		size Size
		want float64
	}{
		{Size{Width: 200, Height: 100}, 2},
		{Size{Width: 100, Height: 200}, 0.5},
		{Size{Width: 100, Height: 100}, 1},
		{Size{Width: 100, Height: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.size.AspectRatio(); got != tt.want {
			t.Errorf("Size%v.AspectRatio() = %v, want %v", tt.size, got, tt.want)
		}
	}
}
