// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// IncrementalDecoder is the resumable LZS decoder (spec §4.3, the
// "IncrementalDecoder"). Unlike Decode, it carries all state needed to
// suspend mid-token and resume later with fresh input and/or output
// slices: the bit queue, the current automaton state, any partially
// decoded token fields, and the sliding history window.
//
// The caller owns the history buffer and passes it to
// NewIncrementalDecoder; IncrementalDecoder never allocates it.
// Under-history back-references (pointing before any output yet produced)
// read as zero whatever the buffer holds: the decoder counts the bytes it
// has written to the ring and does not read slots it has not written
// (spec §4.4, §9).
type IncrementalDecoder struct {
	queue   BitQueue
	history HistoryRing
	state   decoderState

	offset int // back-reference offset, once both offset bits are known
	length int // remaining bytes to copy for the current token

	pendingStatus Status // set by step when it hits a one-shot condition (end marker)
}

// NewIncrementalDecoder constructs an IncrementalDecoder bound to history,
// which must be at least MinHistorySize bytes and should be zero-filled.
func NewIncrementalDecoder(history []byte) (*IncrementalDecoder, error) {
	if len(history) == 0 {
		return nil, ErrHistoryBufferRequired
	}
	if len(history) < MinHistorySize {
		return nil, ErrHistoryBufferTooSmall
	}

	d := &IncrementalDecoder{}
	d.history.Bind(history)
	return d, nil
}

// Reset returns the decoder to its initial state, ready to decode a new
// stream from the start, without reallocating or re-zeroing the history
// buffer (that remains the caller's responsibility if a fresh start is
// also meant to forget prior history).
func (d *IncrementalDecoder) Reset() {
	d.queue.Reset()
	d.state = stateGetTokenType
	d.offset = 0
	d.length = 0
}

// Decompress advances the state machine as far as it can go, consuming
// bytes from in and producing bytes into out, and reports how much of
// each it used along with a Status describing why it stopped (spec §6).
// Decompress never blocks and never errors: a stalled decode is reported
// via Status, not via a returned error, since no compressed-data shape is
// itself invalid per spec §7.
func (d *IncrementalDecoder) Decompress(out, in []byte) (nOut, nIn int, status Status) {
	outPos := 0

	for {
		if outPos >= len(out) {
			status |= StatusNoOutputSpace
			break
		}

		need := d.state.minBits()

		if d.queue.Len() < need || d.state == stateGetLength {
			consumed := d.queue.Refill(in[nIn:])
			nIn += consumed
			if d.state == stateGetLength {
				// The length code word is 2 or 4 bits wide; the table entry
				// selected by the queued bits says which.
				need = int(decodeLength(&d.queue).width)
			}
			if d.queue.Len() < need {
				if d.queue.Len() == 0 {
					status |= StatusInputFinished
				}
				status |= StatusInputStarved
				break
			}
		}

		advanced := d.step(out, &outPos)
		if d.pendingStatus != StatusNone {
			status |= d.pendingStatus
			d.pendingStatus = StatusNone
		}
		if !advanced {
			if outPos >= len(out) {
				status |= StatusNoOutputSpace
			}
			break
		}
	}

	return outPos, nIn, status
}

// step executes exactly one automaton transition for the current state,
// writing to out starting at *outPos and advancing *outPos. It reports
// whether the loop in Decompress should continue; false is returned on
// the end marker and when a copy runs out of output space mid-chunk.
func (d *IncrementalDecoder) step(out []byte, outPos *int) bool {
	switch d.state {
	case stateGetTokenType:
		if d.queue.Take(1) == 0 {
			d.state = stateGetLiteral
		} else {
			d.state = stateGetOffsetType
		}
		return true

	case stateGetLiteral:
		b := byte(d.queue.Take(8))
		out[*outPos] = b
		*outPos++
		d.history.Put(b)
		d.state = stateGetTokenType
		return true

	case stateGetOffsetType:
		if d.queue.Take(1) == 1 {
			d.state = stateGetOffsetShort
		} else {
			d.state = stateGetOffsetLong
		}
		return true

	case stateGetOffsetShort:
		v := int(d.queue.Take(7))
		if v == endMarkerValue {
			d.queue.AlignToByte()
			d.pendingStatus = StatusEndMarker
			d.state = stateGetTokenType
			return false
		}
		d.offset = v
		d.state = stateGetLength
		return true

	case stateGetOffsetLong:
		d.offset = int(d.queue.Take(11))
		d.state = stateGetLength
		return true

	case stateGetLength:
		entry := decodeLength(&d.queue)
		d.queue.Drop(int(entry.width))
		d.length = int(entry.length)
		if d.length == extendedLengthBase {
			d.state = stateCopyExtendedData
		} else {
			d.state = stateCopyData
		}
		return true

	case stateGetExtendedLength:
		// Each nibble names the size of the next chunk to copy, not an
		// increment to accumulate before copying: a value of 15 means
		// "copy 15 more bytes, then read another nibble", so the chunk
		// is copied (via COPY_EXTENDED_DATA) before any further bits are
		// required. This lets the decoder make output progress on a
		// partial chunk even if input runs out before the next nibble.
		nibble := int(d.queue.Take(4))
		d.length = nibble
		if nibble == extendedLengthNibbleMax {
			d.state = stateCopyExtendedData
		} else {
			d.state = stateCopyData
		}
		return true

	case stateCopyData:
		return d.copyStep(out, outPos, stateGetTokenType)

	case stateCopyExtendedData:
		return d.copyStep(out, outPos, stateGetExtendedLength)

	default:
		return false
	}
}

// copyStep copies as much of the current back-reference chunk as will
// fit in the remaining output space, pulling each byte through the
// history ring so that later back-references can in turn reach into
// bytes copied here. On finishing the chunk (length reaches 0) it
// transitions to onDone; on running out of output space it leaves the
// state unchanged so the next call resumes mid-chunk.
func (d *IncrementalDecoder) copyStep(out []byte, outPos *int, onDone decoderState) bool {
	readIdx := d.history.ReadIdxFor(d.offset)

	for d.length > 0 {
		if *outPos >= len(out) {
			return false
		}

		var b byte
		if d.history.written >= d.offset {
			b = d.history.At(readIdx)
		}
		// under-history: the slot has not been written since Bind, so the
		// read is skipped and b stays 0.

		out[*outPos] = b
		*outPos++
		d.history.Put(b)
		readIdx = d.history.advance(readIdx)
		d.length--
	}

	d.state = onDone
	return true
}
