/*
Package swizzle converts texture surfaces between a dense linear layout and
the block-linear "swizzled" layout used by the NVIDIA Tegra X1 GPU, as seen
in console games and texture container formats such as nutexb.

A surface is a single combined buffer holding every array layer and every
mipmap level of one texture. SwizzleSurface and DeswizzleSurface reshuffle
the bytes of that buffer between the two layouts, preserving every pixel
value exactly; they never interpret pixel content, decompress block-
compressed data, or touch a GPU. Callers supply already-decoded dimensions
and a raw byte buffer and get a raw byte buffer back.

Layout:

	Layer 0 Mip 0
	Layer 0 Mip 1
	...
	Layer 0 Mip M
	Layer 1 Mip 0
	...
	Layer L Mip M

The linear layout is tightly packed; the swizzled layout pads each mip to
GOB (Group Of Bytes) boundaries and pads each array layer to a layer-
alignment boundary: one GOB-row's worth of bytes at the full mip-0 width.

This package is a library only: it does not parse any container format
(nutexb, DDS, ...), does not provide a CLI, and does not log. Those
concerns belong to a caller built on top of this package.
*/
package swizzle
