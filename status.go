// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

import "strings"

// Status is a bitmask of conditions the incremental decoder reports after
// each call (spec §6). Flags combine with bitwise OR; StatusNone is the
// zero value.
type Status uint8

// StatusNone means none of the flags below are set.
const StatusNone Status = 0

const (
	// StatusInputStarved means the bit queue holds fewer bits than the
	// current state needs; the caller should supply more input.
	StatusInputStarved Status = 1 << iota

	// StatusInputFinished means queue occupancy is 0 and no input remains
	// in the slice passed to this call; no further progress is possible
	// without new input.
	StatusInputFinished

	// StatusNoOutputSpace means the output slice ran out mid-token; the
	// caller should drain it and supply new output space.
	StatusNoOutputSpace

	// StatusEndMarker means the end marker was consumed; the stream
	// terminates at the next byte boundary.
	StatusEndMarker
)

// Has reports whether every flag set in want is also set in s.
func (s Status) Has(want Status) bool {
	return s&want == want
}

// String renders the set flags as a pipe-separated list (e.g.
// "INPUT_STARVED|INPUT_FINISHED"), or "NONE" if s is StatusNone. Useful
// when a caller's incremental loop stalls and needs to print why.
func (s Status) String() string {
	if s == StatusNone {
		return "NONE"
	}

	names := []struct {
		flag Status
		name string
	}{
		{StatusInputStarved, "INPUT_STARVED"},
		{StatusInputFinished, "INPUT_FINISHED"},
		{StatusNoOutputSpace, "NO_OUTPUT_BUFFER_SPACE"},
		{StatusEndMarker, "END_MARKER"},
	}

	var parts []string
	for _, n := range names {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
