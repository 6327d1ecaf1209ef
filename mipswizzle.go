package swizzle

// swizzleMip copies one mip level's bytes between a linear span and a
// swizzled span using addressTransform. When deswizzle is true, src is the
// swizzled buffer and dst receives the tightly packed linear bytes; when
// false, src is linear and dst receives the padded swizzled bytes (dst must
// already be zero-filled so untouched padding reads as zero).
//
// w, h, d are the mip's extents in compression blocks (or pixels for an
// uncompressed format); rowBytes is w*bytesPerPixel, the logical row length
// before width padding.
func swizzleMip(deswizzle bool, w, h, d, rowBytes, bytesPerPixel int, bh BlockHeight, bd int, src, dst []byte) {
	paddedWidthBytes := alignUp(rowBytes, gobWidth)
	paddedHeightRows := alignUp(h, gobHeight*int(bh))

	if deswizzle {
		i := 0
		for z := 0; z < d; z++ {
			for y := 0; y < h; y++ {
				for xb := 0; xb < rowBytes; xb += bytesPerPixel {
					addr := addressTransform(xb, y, z, paddedWidthBytes, paddedHeightRows, bh, bd)
					copy(dst[i:i+bytesPerPixel], src[addr:addr+bytesPerPixel])
					i += bytesPerPixel
				}
			}
		}
		return
	}

	i := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for xb := 0; xb < rowBytes; xb += bytesPerPixel {
				addr := addressTransform(xb, y, z, paddedWidthBytes, paddedHeightRows, bh, bd)
				copy(dst[addr:addr+bytesPerPixel], src[i:i+bytesPerPixel])
				i += bytesPerPixel
			}
		}
	}
}
