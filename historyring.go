// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// HistoryRing is the caller-owned sliding-history buffer used by
// IncrementalDecoder (spec §3 "HistoryRing"). It wraps a byte slice of size
// H (H >= MinHistorySize) with a write cursor that advances modularly, plus
// a saturating count of bytes written so far (used to decide, for the
// first H bytes of output, whether a ring slot has ever been written).
//
// HistoryRing never allocates: Bind attaches an existing slice.
type HistoryRing struct {
	buf      []byte
	writeIdx int
	written  int // saturates at len(buf)
}

// Bind attaches buf as the ring's backing storage and resets cursors. The
// decoder does not zero buf; IncrementalDecoder instead checks the written
// count and emits zero for any slot not yet written, so earlier contents
// of buf are not read.
func (h *HistoryRing) Bind(buf []byte) {
	h.buf = buf
	h.writeIdx = 0
	h.written = 0
}

// Size returns the capacity of the bound buffer.
func (h *HistoryRing) Size() int { return len(h.buf) }

// WriteIdx returns the current write cursor, always in [0, Size()).
func (h *HistoryRing) WriteIdx() int { return h.writeIdx }

// Put appends one byte at the write cursor and advances it modularly.
func (h *HistoryRing) Put(b byte) {
	h.buf[h.writeIdx] = b
	h.writeIdx++
	if h.writeIdx == len(h.buf) {
		h.writeIdx = 0
	}
	if h.written < len(h.buf) {
		h.written++
	}
}

// ReadIdxFor computes the ring index to start reading a back-reference of
// the given offset from, relative to the current write cursor. It computes
// the safe modular equivalent of writeIdx-offset instead of relying on
// unsigned underflow (spec §9 design note):
//
//	readIdx = (writeIdx + historyBufferSize - offset) mod historyBufferSize
func (h *HistoryRing) ReadIdxFor(offset int) int {
	n := len(h.buf)
	idx := (h.writeIdx + n - offset%n) % n
	return idx
}

// At returns the byte at ring index idx.
func (h *HistoryRing) At(idx int) byte { return h.buf[idx] }

// advance returns idx+1 wrapped modularly.
func (h *HistoryRing) advance(idx int) int {
	idx++
	if idx == len(h.buf) {
		idx = 0
	}
	return idx
}
