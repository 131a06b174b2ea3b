// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

import "errors"

// Sentinel errors for the incremental decoder's API surface.
//
// The decode grammar itself has no unrecoverable error state: a well-formed
// prefix of a valid LZS stream always decodes to a well-formed prefix of the
// plaintext, and an under-history back-reference is defined to emit zero
// bytes rather than fail (see HistoryRing). These sentinels exist only for
// misuse of the constructor, not for malformed compressed data.
var (
	// ErrHistoryBufferRequired is returned when NewIncrementalDecoder is called with a nil or empty history buffer.
	ErrHistoryBufferRequired = errors.New("lzs: history buffer required")
	// ErrHistoryBufferTooSmall is returned when the supplied history buffer is smaller than MinHistorySize.
	ErrHistoryBufferTooSmall = errors.New("lzs: history buffer smaller than MinHistorySize")
)
