package swizzle

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	return divRoundUp(n, align) * align
}

// linearMipSize is the tightly packed byte size of a mip level with the
// given extents (in compression blocks) and bytes-per-pixel(-or-block).
func linearMipSize(w, h, d, bytesPerPixel int) int {
	return w * h * d * bytesPerPixel
}

// swizzledMipSize is the padded byte size of a mip level in block-linear
// layout: the row length in bytes (w times bytes-per-pixel(-or-block)) padded
// to a multiple of one GOB (64 B), times height padded to gobHeight*bh rows,
// times depth padded to bd slices.
func swizzledMipSize(w, h, d int, bh BlockHeight, bd, bytesPerPixel int) int {
	rowBytes := w * bytesPerPixel
	paddedWidthBytes := alignUp(rowBytes, gobWidth)
	paddedHeightRows := alignUp(h, gobHeight*int(bh))
	paddedDepth := alignUp(d, bd)
	return paddedWidthBytes * paddedHeightRows * paddedDepth
}
