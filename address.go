package swizzle

// gobOffset computes the offset within one 64x8 byte GOB for an intra-row
// byte position xb (0..64) and row yb (0..8), using the canonical Fermi/
// Maxwell Z-order bit interleave: bits of x and y are reshuffled so that
// consecutive bytes stay near-adjacent along the curve within the 512 B GOB.
func gobOffset(xb, yb int) int {
	return ((xb & 0x20) << 3) |
		((yb & 0x04) << 5) |
		((yb & 0x02) << 5) |
		((xb & 0x10) << 1) |
		((yb & 0x01) << 4) |
		(xb & 0x0F)
}

// addressTransform maps a logical (xByte, y, z) coordinate within one mip
// level to a byte offset in the swizzled mip buffer. xByte is a byte offset
// along the row (0 <= xByte < paddedWidthBytes); bh and bd are the mip's
// block height and block depth, in GOBs.
func addressTransform(xByte, y, z, paddedWidthBytes, paddedHeightRows int, bh BlockHeight, bd int) int {
	blockX := xByte / gobWidth
	blockY := y / (gobHeight * int(bh))
	blockZ := z / bd

	gobInBlockY := (y / gobHeight) % int(bh)
	gobInBlockZ := z % bd

	xb := xByte % gobWidth
	yb := y % gobHeight
	offsetInGOB := gobOffset(xb, yb)

	blocksPerRow := paddedWidthBytes / gobWidth
	gobsPerBlock := int(bh) * bd
	blockStrideBytes := gobSize * gobsPerBlock
	rowStrideBlocks := blocksPerRow * blockStrideBytes
	sliceStride := rowStrideBlocks * (paddedHeightRows / (gobHeight * int(bh)))

	return blockZ*sliceStride +
		blockY*rowStrideBlocks +
		blockX*blockStrideBytes +
		gobInBlockZ*(int(bh)*gobSize) +
		gobInBlockY*gobSize +
		offsetInGOB
}
