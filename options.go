// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

// MinHistorySize is the smallest history ring buffer NewIncrementalDecoder
// will accept. It equals the largest long-offset back-reference (2047), the
// maximum distance a decoded byte can reach back into history.
const MinHistorySize = 2047

// DefaultHistorySize is the recommended history ring buffer size (spec §6).
const DefaultHistorySize = 2048
