// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// BitQueue is a most-significant-bit-first bit reader over a 32-bit
// register (spec §4.1). Valid bits are packed at the high end: the next bit
// to read is always bit 31. Refilling shifts a whole byte into the register
// above the currently valid bits; consuming shifts the register left and
// drops the occupancy count by the same amount.
//
// BitQueue never allocates and never reads past the slice it is given; it
// is the caller's job to decide when more input is needed (len == 0).
type BitQueue struct {
	reg uint32 // bits packed at the high end; occupancy bits are valid
	len int    // occupancy, always in [0, 32]
}

// Len returns the current occupancy in bits.
func (q *BitQueue) Len() int { return q.len }

// Refill pulls bytes from in, packing each one just above the currently
// valid bits, while occupancy is <= 24 and input remains. It returns the
// number of bytes consumed. Refilling stops once occupancy exceeds 24 (so
// at most 32 bits are held) because the byte is placed with a shift of
// 24-occupancy, which must not go negative: Go panics on a negative shift
// count.
func (q *BitQueue) Refill(in []byte) int {
	consumed := 0
	for q.len <= 24 && consumed < len(in) {
		q.reg |= uint32(in[consumed]) << uint(24-q.len)
		q.len += 8
		consumed++
	}
	return consumed
}

// Peek returns the top n bits (1 <= n <= 16) without consuming them. Peek
// does not bounds-check occupancy. The bits below the valid ones are always
// zero, so with fewer than n bits queued the result is the valid bits
// followed by zeros; decodeLength relies on this to find a length code's
// width before 4 bits have arrived, and every other call site has already
// verified Len() >= n.
func (q *BitQueue) Peek(n int) uint32 {
	return (q.reg >> uint(32-n)) & lowBitsMask(n)
}

// Drop consumes the top n bits, shifting the register left by n and
// decrementing occupancy. Bits shifted past the high end are discarded.
func (q *BitQueue) Drop(n int) {
	if n <= 0 {
		return
	}
	if n >= 32 {
		q.reg = 0
	} else {
		q.reg <<= uint(n)
	}
	q.len -= n
	if q.len < 0 {
		q.len = 0
	}
}

// Take reads and consumes the top n bits (1 <= n <= 16) in one step.
func (q *BitQueue) Take(n int) uint32 {
	v := q.Peek(n)
	q.Drop(n)
	return v
}

// AlignToByte drops whatever bits remain in the current partially-consumed
// byte, leaving occupancy a multiple of 8 (spec §4.1, used by the end
// marker per spec §3).
func (q *BitQueue) AlignToByte() {
	q.Drop(q.len % 8)
}

// Reset clears the queue to its zero state (used by IncrementalDecoder.Reset).
func (q *BitQueue) Reset() {
	q.reg = 0
	q.len = 0
}
