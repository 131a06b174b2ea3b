// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// Decode decompresses a complete LZS bit stream from src into dst in a
// single call (spec §4.5, the "OneShotDecoder"). It keeps no state across
// calls: the sliding history window is simply whatever bytes of dst have
// already been written, so Decode needs no separate HistoryRing. It is
// coded as nested branches over the bit grammar rather than against the
// explicit state enum IncrementalDecoder uses, since a single call never
// needs to suspend and resume mid-token.
//
// Decode stops when either the input bit queue runs dry (a truncated
// trailing token decodes whatever whole tokens preceded it and then
// simply stops, per spec §7: a well-formed prefix of a valid stream
// decodes to a well-formed prefix of the plaintext) or dst fills up. It
// returns the number of bytes of dst written and whether the end marker
// was consumed before either of those happened.
func Decode(dst, src []byte) (n int, endMarker bool) {
	var q BitQueue
	inPos := 0
	outPos := 0

	for outPos < len(dst) {
		if !ensure(&q, src, &inPos, 1) {
			break
		}

		if q.Take(1) == 0 {
			if !ensure(&q, src, &inPos, 8) {
				break
			}
			dst[outPos] = byte(q.Take(8))
			outPos++
			continue
		}

		if !ensure(&q, src, &inPos, 1) {
			break
		}

		var offset int
		if q.Take(1) == 1 {
			if !ensure(&q, src, &inPos, 7) {
				break
			}
			v := int(q.Take(7))
			if v == endMarkerValue {
				q.AlignToByte()
				endMarker = true
				break
			}
			offset = v
		} else {
			if !ensure(&q, src, &inPos, 11) {
				break
			}
			offset = int(q.Take(11))
		}

		ensure(&q, src, &inPos, 4)
		entry := decodeLength(&q)
		if q.Len() < int(entry.width) {
			break
		}
		q.Drop(int(entry.width))

		length := int(entry.length)
		extending := length == extendedLengthBase

		for {
			copied := copyBackRef(dst, outPos, offset, length)
			outPos += copied
			if copied < length {
				return outPos, endMarker
			}
			if !extending {
				break
			}
			if !ensure(&q, src, &inPos, 4) {
				return outPos, endMarker
			}
			nibble := int(q.Take(4))
			length = nibble
			extending = nibble == extendedLengthNibbleMax
		}
	}

	return outPos, endMarker
}

// ensure tries once to top q up to at least n bits of occupancy by
// refilling from src[*inPos:], advancing *inPos by however many bytes
// that consumed, and reports whether q now holds at least n bits. One
// refill attempt suffices because BitQueue.Refill itself loops until
// occupancy exceeds 24 or input runs out, well above any n this package
// asks for.
func ensure(q *BitQueue, src []byte, inPos *int, n int) bool {
	if q.Len() < n {
		*inPos += q.Refill(src[*inPos:])
	}
	return q.Len() >= n
}
