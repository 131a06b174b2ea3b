// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// LZS format constants: offset and length bounds, and the incremental
// decoder's state enum (spec §4.3).

// Back-reference offset bounds.
const (
	minOffset      = 1
	maxShortOffset = 127  // 7-bit offset field, value 0 is reserved for the end marker
	maxLongOffset  = 2047 // 11-bit offset field
	endMarkerValue = 0    // short offset value that signals the end marker
)

// minDecodedLength is the smallest length a length-decode table entry can
// produce (spec §4.2: prefix "00" -> length 2).
const minDecodedLength = 2

// extendedLengthBase is the length value (8) that signals an extended-length
// nibble sequence must follow (spec §3, §4.2).
const extendedLengthBase = 8

// extendedLengthNibbleMax is the nibble value (15) that means "more nibbles
// follow"; any smaller value terminates the extended-length sequence.
const extendedLengthNibbleMax = 15

// decoderState enumerates the incremental decoder's automaton states
// (spec §4.3). Transitions are written explicitly as a switch in
// IncrementalDecoder.step rather than relying on enum adjacency, per the
// spec's design note against ordering coincidences.
type decoderState uint8

const (
	stateGetTokenType decoderState = iota
	stateGetLiteral
	stateGetOffsetType
	stateGetOffsetShort
	stateGetOffsetLong
	stateGetLength
	stateCopyData
	stateCopyExtendedData
	stateGetExtendedLength
)

// minBits gives the minimum bit-queue occupancy each state needs before it
// may execute (spec §4.3 "Min bits" column). stateGetLength, whose need
// depends on the width of the length code word, reports 0 here;
// Decompress checks occupancy against the width of the table entry that
// the queued bits select.
func (s decoderState) minBits() int {
	switch s {
	case stateGetTokenType:
		return 1
	case stateGetLiteral:
		return 8
	case stateGetOffsetType:
		return 1
	case stateGetOffsetShort:
		return 7
	case stateGetOffsetLong:
		return 11
	case stateGetExtendedLength:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer for debugging stalled incremental loops.
func (s decoderState) String() string {
	switch s {
	case stateGetTokenType:
		return "GET_TOKEN_TYPE"
	case stateGetLiteral:
		return "GET_LITERAL"
	case stateGetOffsetType:
		return "GET_OFFSET_TYPE"
	case stateGetOffsetShort:
		return "GET_OFFSET_SHORT"
	case stateGetOffsetLong:
		return "GET_OFFSET_LONG"
	case stateGetLength:
		return "GET_LENGTH"
	case stateCopyData:
		return "COPY_DATA"
	case stateCopyExtendedData:
		return "COPY_EXTENDED_DATA"
	case stateGetExtendedLength:
		return "GET_EXTENDED_LENGTH"
	default:
		return "UNKNOWN"
	}
}
