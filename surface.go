package swizzle

// estimatedCapacity is a 1.5x-of-linear-size heuristic used to size the
// initial output buffer allocation, avoiding repeated reallocation while
// growing it mip by mip.
func estimatedCapacity(width, height, depth int, blockDim BlockDim, bytesPerPixel, mipmapCount, arrayCount int) int {
	base := 0
	for mip := 0; mip < mipmapCount; mip++ {
		w, h, d := mipExtents(width, height, depth, blockDim, mip)
		base += linearMipSize(w, h, d, bytesPerPixel)
	}
	base *= arrayCount
	return base + base/2
}

// SwizzleSurface swizzles all array layers and mipmaps in source using the
// block-linear algorithm, producing a combined buffer with GOB alignment
// padding between mips and layer alignment padding between array layers.
//
// Set blockHeightMip0 to nil to infer the block height from the specified
// dimensions; for 3D textures (depth > 1) it is always forced to 1.
func SwizzleSurface(width, height, depth int, source []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel, mipmapCount, arrayCount int) ([]byte, error) {
	return swizzleSurfaceInner(false, width, height, depth, source, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, arrayCount)
}

// DeswizzleSurface deswizzles all array layers and mipmaps in source using
// the block-linear algorithm, producing a new tightly packed buffer with no
// padding between array layers or mipmaps.
//
// Set blockHeightMip0 to nil to infer the block height from the specified
// dimensions; for 3D textures (depth > 1) it is always forced to 1.
func DeswizzleSurface(width, height, depth int, source []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel, mipmapCount, arrayCount int) ([]byte, error) {
	return swizzleSurfaceInner(true, width, height, depth, source, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, arrayCount)
}

func swizzleSurfaceInner(deswizzle bool, width, height, depth int, source []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel, mipmapCount, arrayCount int) ([]byte, error) {
	result := make([]byte, 0, estimatedCapacity(width, height, depth, blockDim, bytesPerPixel, mipmapCount, arrayCount))

	height0InBlocks := maxInt(1, divRoundUp(height, blockDim.Height))
	bh0, err := resolveBlockHeightMip0(height0InBlocks, depth, blockHeightMip0)
	if err != nil {
		return nil, err
	}

	width0InBlocks := maxInt(1, divRoundUp(width, blockDim.Width))
	// Layers are padded up to a whole number of single GOB-rows spanning the
	// full padded width, independent of the mip-0 block height: that height
	// only governs how GOBs stack within a mip, not the layer boundary.
	layerAlignment := swizzledMipSize(width0InBlocks, 1, 1, BlockHeightOne, 1, bytesPerPixel)

	srcOffset := 0
	for layer := 0; layer < arrayCount; layer++ {
		for mip := 0; mip < mipmapCount; mip++ {
			w, h, d := mipExtents(width, height, depth, blockDim, mip)
			bh := mipBlockHeight(h, bh0)
			bd := mipBlockDepth(d)

			if err := swizzleMipLevel(deswizzle, w, h, d, bh, bd, bytesPerPixel, source, &result, &srcOffset); err != nil {
				return nil, err
			}
		}

		if arrayCount > 1 {
			if deswizzle {
				srcOffset = alignUp(srcOffset, layerAlignment)
			} else {
				newLength := alignUp(len(result), layerAlignment)
				if newLength > len(result) {
					result = append(result, make([]byte, newLength-len(result))...)
				}
			}
		}
	}

	return result, nil
}

// swizzleMipLevel grows result by the size needed for one mip, checks that
// source has enough remaining bytes, invokes the address transform, and
// advances srcOffset past the bytes consumed from source.
func swizzleMipLevel(deswizzle bool, w, h, d int, bh BlockHeight, bd, bytesPerPixel int, source []byte, result *[]byte, srcOffset *int) error {
	swizzledSize := swizzledMipSize(w, h, d, bh, bd, bytesPerPixel)
	linearSize := linearMipSize(w, h, d, bytesPerPixel)

	inputSize := swizzledSize
	outputSize := linearSize
	if !deswizzle {
		inputSize = linearSize
		outputSize = swizzledSize
	}

	if len(source) < *srcOffset+inputSize {
		return notEnoughDataError(*srcOffset+inputSize, len(source))
	}

	dstOffset := len(*result)
	*result = append(*result, make([]byte, outputSize)...)

	rowBytes := w * bytesPerPixel
	swizzleMip(deswizzle, w, h, d, rowBytes, bytesPerPixel, bh, bd, source[*srcOffset:], (*result)[dstOffset:])

	*srcOffset += inputSize

	return nil
}
