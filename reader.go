// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

import "io"

// Reader adapts IncrementalDecoder to the io.Reader interface: it pulls
// compressed bytes from an underlying reader as needed and exposes the
// decompressed plaintext as a stream. No decoding logic of its own, just
// a thin translation between IncrementalDecoder's Status results and
// io.Reader's (n, error) contract.
type Reader struct {
	src io.Reader
	dec *IncrementalDecoder

	inbuf  []byte
	inPos  int
	inLen  int
	srcEOF bool
	done   bool
}

// NewReader constructs a Reader that decompresses r's bytes using a fresh
// IncrementalDecoder bound to history (see NewIncrementalDecoder for the
// size and zero-initialization requirements on history).
func NewReader(r io.Reader, history []byte) (*Reader, error) {
	dec, err := NewIncrementalDecoder(history)
	if err != nil {
		return nil, err
	}
	return &Reader{src: r, dec: dec, inbuf: make([]byte, 4096)}, nil
}

// Read implements io.Reader. It returns io.EOF once the end marker has
// been decoded, or once the underlying reader is exhausted and no further
// progress is possible (a truncated stream, per spec §7, simply stops
// rather than reporting a decode error).
func (r *Reader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}

	for {
		nOut, nIn, status := r.dec.Decompress(p, r.inbuf[r.inPos:r.inLen])
		r.inPos += nIn

		if status.Has(StatusEndMarker) {
			r.done = true
		}
		if nOut > 0 {
			return nOut, nil
		}
		if r.done {
			return 0, io.EOF
		}
		if status.Has(StatusNoOutputSpace) {
			// len(p) == 0: no progress possible, but not an error either.
			return 0, nil
		}

		if r.inPos == r.inLen {
			if r.srcEOF {
				return 0, io.EOF
			}
			n, err := r.src.Read(r.inbuf)
			r.inPos, r.inLen = 0, n
			if err == io.EOF {
				r.srcEOF = true
			} else if err != nil {
				return 0, err
			}
			if n == 0 && r.srcEOF {
				return 0, io.EOF
			}
		}
	}
}
