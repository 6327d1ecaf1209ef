package swizzle

import "testing"

func TestGobOffsetIsBijective(t *testing.T) {
	seen := make(map[int]bool, gobSize)
	for yb := 0; yb < gobHeight; yb++ {
		for xb := 0; xb < gobWidth; xb++ {
			off := gobOffset(xb, yb)
			if off < 0 || off >= gobSize {
				t.Fatalf("gobOffset(%d, %d) = %d, out of [0, %d)", xb, yb, off, gobSize)
			}
			if seen[off] {
				t.Fatalf("gobOffset(%d, %d) = %d collides with an earlier (xb, yb)", xb, yb, off)
			}
			seen[off] = true
		}
	}
	if len(seen) != gobSize {
		t.Fatalf("covered %d offsets, want %d", len(seen), gobSize)
	}
}

func TestAddressTransformStaysInBounds(t *testing.T) {
	bh := BlockHeightFour
	bd := 2
	w, h, d := 32, 32, 4
	paddedWidthBytes := alignUp(w, gobWidth)
	paddedHeightRows := alignUp(h, gobHeight*int(bh))

	maxOffset := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for xb := 0; xb < w; xb++ {
				off := addressTransform(xb, y, z, paddedWidthBytes, paddedHeightRows, bh, bd)
				if off < 0 {
					t.Fatalf("addressTransform(%d, %d, %d, ...) = %d, negative", xb, y, z, off)
				}
				if off > maxOffset {
					maxOffset = off
				}
			}
		}
	}

	expectedSize := swizzledMipSize(w, h, d, bh, bd, 1)
	if maxOffset >= expectedSize {
		t.Fatalf("max offset %d exceeds mip size %d", maxOffset, expectedSize)
	}
}

func TestAddressTransformIsInjectiveWithinMip(t *testing.T) {
	bh := BlockHeightTwo
	bd := 1
	w, h, d := 16, 16, 1
	paddedWidthBytes := alignUp(w, gobWidth)
	paddedHeightRows := alignUp(h, gobHeight*int(bh))

	seen := make(map[int]bool)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for xb := 0; xb < w; xb++ {
				off := addressTransform(xb, y, z, paddedWidthBytes, paddedHeightRows, bh, bd)
				if seen[off] {
					t.Fatalf("address (%d, %d, %d) collides with an earlier coordinate at offset %d", xb, y, z, off)
				}
				seen[off] = true
			}
		}
	}
}
