package fixedpoint

import "testing"

func TestFixed16RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   float32
	}{
		{"zero", 0},
		{"one", 1},
		{"half", 0.5},
		{"negative", -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat16(tt.in).ToFloat32()
			if diff := got - tt.in; diff > 1e-4 || diff < -1e-4 {
				t.Errorf("FromFloat16(%v).ToFloat32() = %v, want ~%v", tt.in, got, tt.in)
			}
		})
	}
}

func TestFixed16Mul(t *testing.T) {
	a := FromFloat16(2.5)
	b := FromFloat16(4)
	got := a.Mul(b).ToFloat32()
	if got != 10 {
		t.Errorf("2.5*4 = %v, want 10", got)
	}
}

func TestFixed24IntTruncates(t *testing.T) {
	f := FromFloat8(3.75)
	if got := f.Int(); got != 3 {
		t.Errorf("Int() = %d, want 3", got)
	}
}

func TestSafeDivFloat32ZeroDenominator(t *testing.T) {
	if got := SafeDivFloat32(1, 0); got != 0 {
		t.Errorf("SafeDivFloat32(1,0) = %v, want 0", got)
	}
}

func TestSafeDivIntZeroDenominator(t *testing.T) {
	if got := SafeDivInt(10, 0); got != 0 {
		t.Errorf("SafeDivInt(10,0) = %d, want 0", got)
	}
}
