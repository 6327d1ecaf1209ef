package swizzle

// divRoundUp computes ceil(a / b) for non-negative integers.
func divRoundUp(a, b int) int {
	return (a + b - 1) / b
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mipDimension reduces a mip-0 pixel dimension to mip level m, then expresses
// it in compression blocks along the given block axis. The result is always
// at least 1: both the bit shift and the division are floored at 1 so every
// mip has non-empty extents.
func mipDimension(dim, blockAxis, m int) int {
	shifted := maxInt(1, dim>>uint(m)) //nolint:gosec // m is always non-negative
	return maxInt(1, divRoundUp(shifted, blockAxis))
}

// mipExtents returns the (width, height, depth) of mip level m in
// compression blocks (or pixels, for a 1x1x1 block).
func mipExtents(width, height, depth int, block BlockDim, m int) (w, h, d int) {
	return mipDimension(width, block.Width, m),
		mipDimension(height, block.Height, m),
		mipDimension(depth, block.Depth, m)
}
