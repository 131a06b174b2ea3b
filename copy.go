// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// copyBackRef copies a back-reference of the given offset and length into
// dst starting at outPos (spec §4.4). It returns the number of bytes
// actually written, which is less than length only when dst ran out of
// room, which ends the one-shot decode (spec §4.5).
//
// Bytes that would be read from before the start of produced output are
// defined to be zero rather than read out of bounds: the under-history
// zero-fill is a security contract against leaking uninitialized memory,
// not an accident (spec §9), so it is preserved here even though it costs
// an extra branch per run.
func copyBackRef(dst []byte, outPos, offset, length int) int {
	avail := len(dst) - outPos
	if avail <= 0 {
		return 0
	}
	if length > avail {
		length = avail
	}

	srcPos := outPos - offset
	zeroed := 0
	for zeroed < length && srcPos+zeroed < 0 {
		dst[outPos+zeroed] = 0
		zeroed++
	}
	if zeroed == length {
		return length
	}

	copyRunExpand(dst, outPos+zeroed, offset, length-zeroed)
	return length
}

// copyRunExpand copies length bytes from dst[outPos-dist:] to
// dst[outPos:outPos+length], where outPos-dist >= 0. If dist < length, LZ
// semantics require "forward" expansion (newly written bytes become valid
// source for the remainder of the match). This is implemented using
// repeated doubling: first copy one full distance chunk, then copy from
// the already-expanded output, which is much cheaper than a byte-by-byte
// loop for long runs (e.g. a run-length-encoded "aaaa...a" expansion).
func copyRunExpand(dst []byte, outPos, dist, length int) {
	srcPos := outPos - dist

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[srcPos:srcPos+length])
		return
	}

	copy(dst[outPos:outPos+dist], dst[srcPos:outPos])
	copied := dist
	for copied < length {
		n := copy(dst[outPos+copied:outPos+length], dst[outPos:outPos+copied])
		copied += n
	}
}
