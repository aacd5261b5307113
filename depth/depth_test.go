package depth

import "testing"

func TestToRaster(t *testing.T) {
	tests := []struct {
		name string
		d    float32
		f    Format
		want uint32
	}{
		{"d16 zero", 0, D16, 0},
		{"d16 one", 1, D16, 0xFFFF},
		{"d32 one", 1, D32, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRaster(tt.d, tt.f); got != tt.want {
				t.Errorf("ToRaster(%v, %v) = %#x, want %#x", tt.d, tt.f, got, tt.want)
			}
		})
	}
}

// ToRaster does not clamp: a depth outside [0,1] must scale to a raster
// value IsValidRasterDepth rejects, so the fragment finalizer's depth-range
// check (spec §4.10 step 1) actually has something to catch.
func TestToRasterOutOfRangeIsInvalid(t *testing.T) {
	if IsValidRasterDepth(ToRaster(1.5, D16), D16) {
		t.Error("depth 1.5 should scale to an out-of-range D16 raster value")
	}
}

func TestIsValidRasterDepth(t *testing.T) {
	if !IsValidRasterDepth(0xFFFF, D16) {
		t.Error("0xFFFF should be valid for D16")
	}
	if IsValidRasterDepth(0x10000, D16) {
		t.Error("0x10000 should be invalid for D16")
	}
	if !IsValidRasterDepth(0xFFFFFFFF, D32) {
		t.Error("0xFFFFFFFF should be valid for D32")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	t.Run("D16", func(t *testing.T) {
		buf := make([]byte, 4*BytesPerPixel(D16))
		Write(buf, 2, D16, 0xBEEF)
		if got := Read(buf, 2, D16); got != 0xBEEF {
			t.Errorf("Read = %#x, want 0xbeef", got)
		}
	})
	t.Run("D32", func(t *testing.T) {
		buf := make([]byte, 4*BytesPerPixel(D32))
		Write(buf, 1, D32, 0xDEADBEEF)
		if got := Read(buf, 1, D32); got != 0xDEADBEEF {
			t.Errorf("Read = %#x, want 0xdeadbeef", got)
		}
	})
}
