// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

/*
Package lzs implements the LZS (Lempel-Ziv-Stac) decompressor defined by
ANSI X3.241-1994 and documented in RFCs 1967, 1974, 2395 and 3943. LZS is an
LZ77-derivative with a sliding history window of up to 2047 bytes and a
compact variable-length code for (offset, length) back-references and
literal bytes.

This package is decode-only: it has no compressor, no CLI, and no framing.
The wire format is a raw, most-significant-bit-first bit stream with no
length prefix, header, or checksum.

# One-shot decoding

Use Decode when the whole compressed buffer is already in memory and the
exact (or a generously upper-bounded) output size is known:

	n, endMarker := lzs.Decode(dst, src)

# Incremental decoding

Use NewIncrementalDecoder when input and output arrive in arbitrary-sized
fragments (e.g. streamed over a socket) and decode state must survive
across calls:

	dec, err := lzs.NewIncrementalDecoder(make([]byte, lzs.DefaultHistorySize))
	for {
	    nOut, nIn, status := dec.Decompress(out, in)
	    // consume out[:nOut]; advance in by nIn; inspect status for
	    // INPUT_STARVED / NO_OUTPUT_BUFFER_SPACE / END_MARKER
	}

The incremental decoder never allocates on the decode path: the caller owns
the input, output, and history buffers and is responsible for resupplying
them across calls.
*/
package lzs
