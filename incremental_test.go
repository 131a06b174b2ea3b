// SPDX-License-Identifier: MIT
// Copyright (c) 2026 pombredanne

package lzs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewIncrementalDecoder_ValidatesHistoryBuffer(t *testing.T) {
	if _, err := NewIncrementalDecoder(nil); !errors.Is(err, ErrHistoryBufferRequired) {
		t.Fatalf("expected ErrHistoryBufferRequired, got %v", err)
	}
	if _, err := NewIncrementalDecoder(make([]byte, MinHistorySize-1)); !errors.Is(err, ErrHistoryBufferTooSmall) {
		t.Fatalf("expected ErrHistoryBufferTooSmall, got %v", err)
	}
	if _, err := NewIncrementalDecoder(make([]byte, DefaultHistorySize)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIncrementalDecoder_WholeStreamInOneCall(t *testing.T) {
	var w bitWriter
	w.writeLiteral('f')
	w.writeLiteral('o')
	w.writeLiteral('o')
	w.writeShortRef(3, 5) // repeats "foo" cyclically as a run of length 5 at offset 3: "foofo"
	w.writeEndMarker()

	dec, err := NewIncrementalDecoder(make([]byte, DefaultHistorySize))
	if err != nil {
		t.Fatalf("NewIncrementalDecoder failed: %v", err)
	}

	out := make([]byte, 32)
	nOut, nIn, status := dec.Decompress(out, w.bytes())

	if !status.Has(StatusEndMarker) {
		t.Fatalf("expected END_MARKER, got %v", status)
	}
	if nIn != len(w.bytes()) {
		t.Fatalf("nIn = %d, want %d", nIn, len(w.bytes()))
	}

	want := "foo" + expandRun("foo", 5)
	if got := string(out[:nOut]); got != want {
		t.Fatalf("decoded = %q, want %q", got, want)
	}
}

// TestIncrementalDecoder_FragmentedAcrossManyCalls feeds the compressed
// stream and the output buffer one byte at a time, checking that the
// decoder reassembles exactly the same plaintext as a single-call decode
// regardless of how the caller slices up input and output (spec §8,
// fragmentation independence).
func TestIncrementalDecoder_FragmentedAcrossManyCalls(t *testing.T) {
	var w bitWriter
	w.writeLiteral('m')
	w.writeLiteral('i')
	w.writeLiteral('s')
	w.writeLiteral('s')
	w.writeShortRef(4, 4) // "miss" + back-ref -> "missmiss"
	w.writeLongRef(2, 6)
	w.writeLongOffset(2)
	w.writeExtendedLength(9) // total length 8+9=17
	w.writeEndMarker()

	stream := w.bytes()

	dec, err := NewIncrementalDecoder(make([]byte, DefaultHistorySize))
	if err != nil {
		t.Fatalf("NewIncrementalDecoder failed: %v", err)
	}

	var got bytes.Buffer
	inPos := 0
	var status Status
	scratch := make([]byte, 1)

	for !status.Has(StatusEndMarker) {
		var in []byte
		if inPos < len(stream) {
			in = stream[inPos : inPos+1]
		}

		nOut, nIn, st := dec.Decompress(scratch, in)
		inPos += nIn
		got.Write(scratch[:nOut])
		status = st

		if nOut == 0 && nIn == 0 && !st.Has(StatusEndMarker) {
			if st.Has(StatusInputStarved) && inPos >= len(stream) {
				t.Fatalf("decoder stalled needing more input but stream is exhausted, status=%v", st)
			}
		}
	}

	oneShotDst := make([]byte, 64)
	wantN, wantEnd := Decode(oneShotDst, stream)
	if !wantEnd {
		t.Fatal("one-shot reference decode did not find end marker")
	}

	if diff := cmp.Diff(oneShotDst[:wantN], got.Bytes()); diff != "" {
		t.Fatalf("fragmented decode mismatch (-oneShot +fragmented):\n%s", diff)
	}
}

func TestIncrementalDecoder_Reset(t *testing.T) {
	var w bitWriter
	w.writeLiteral('x')
	w.writeEndMarker()

	dec, err := NewIncrementalDecoder(make([]byte, DefaultHistorySize))
	if err != nil {
		t.Fatalf("NewIncrementalDecoder failed: %v", err)
	}

	out := make([]byte, 8)
	stream := w.bytes()
	if _, _, status := dec.Decompress(out, stream); !status.Has(StatusEndMarker) {
		t.Fatalf("expected END_MARKER on first decode, got %v", status)
	}

	dec.Reset()

	nOut, _, status := dec.Decompress(out, stream)
	if !status.Has(StatusEndMarker) {
		t.Fatalf("expected END_MARKER after reset, got %v", status)
	}
	if got, want := string(out[:nOut]), "x"; got != want {
		t.Fatalf("decoded after reset = %q, want %q", got, want)
	}
}

func TestIncrementalDecoder_NoOutputSpaceStatus(t *testing.T) {
	var w bitWriter
	w.writeLiteral('a')
	w.writeLiteral('b')
	w.writeEndMarker()

	dec, err := NewIncrementalDecoder(make([]byte, DefaultHistorySize))
	if err != nil {
		t.Fatalf("NewIncrementalDecoder failed: %v", err)
	}

	out := make([]byte, 0)
	nOut, nIn, status := dec.Decompress(out, w.bytes())
	if nOut != 0 || nIn != 0 {
		t.Fatalf("expected no progress with zero-length output, got nOut=%d nIn=%d", nOut, nIn)
	}
	if !status.Has(StatusNoOutputSpace) {
		t.Fatalf("expected NO_OUTPUT_BUFFER_SPACE, got %v", status)
	}
}
