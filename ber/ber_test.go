package ber

import (
	"errors"
	"testing"
)

var testsReadHeader = []struct {
	given           []byte
	expectedClass   Class
	expectedTag     uint32
	expectedLength  int
	expectedHdrLen  int
}{
	{[]byte{0x02, 0x01, 0x26}, ClassUniversal, TagInteger, 1, 2},
	{[]byte{0x04, 0x06, 'p', 'u', 'b', 'l', 'i', 'c'}, ClassUniversal, TagOctetString, 6, 2},
	{[]byte{0x30, 0x03, 0x02, 0x01, 0x00}, ClassUniversal, TagSequence, 3, 2},
	{[]byte{0xa2, 0x03, 0x02, 0x01, 0x00}, ClassContextSpecific, 2, 3, 2},
	{[]byte{0x43, 0x01, 0x05}, ClassApplication, 3, 1, 2},
}

func TestReadHeader(t *testing.T) {
	for i, test := range testsReadHeader {
		hdr, _, err := ReadHeader(test.given)
		if err != nil {
			t.Fatalf("%d: unexpected error: %s", i, err)
		}
		if hdr.Class != test.expectedClass || hdr.Tag != test.expectedTag ||
			hdr.Length != test.expectedLength || hdr.HeaderLen != test.expectedHdrLen {
			t.Errorf("%d: got %+v", i, hdr)
		}
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{0x02},
		{0x02, 0x05, 0x01, 0x02},
		{0x1f},
	}
	for i, given := range cases {
		if _, _, err := ReadHeader(given); !errors.Is(err, ErrTruncated) {
			t.Errorf("%d: expected ErrTruncated, got %v", i, err)
		}
	}
}

func TestReadHeaderIndefiniteLength(t *testing.T) {
	_, _, err := ReadHeader([]byte{0x30, 0x80, 0x02, 0x01, 0x00, 0x00, 0x00})
	if !errors.Is(err, ErrIndefiniteLength) {
		t.Errorf("expected ErrIndefiniteLength, got %v", err)
	}
}

func TestReadHeaderLongForm(t *testing.T) {
	content := make([]byte, 200)
	given := append([]byte{0x04, 0x81, 0xc8}, content...)
	hdr, rest, err := ReadHeader(given)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hdr.Length != 200 || len(rest) != 200 {
		t.Errorf("got length=%d rest=%d", hdr.Length, len(rest))
	}
}

func TestReadIntegerNarrowing(t *testing.T) {
	rest, v, err := ReadInt32([]byte{0x02, 0x01, 0x26})
	if err != nil || v != 38 || len(rest) != 0 {
		t.Errorf("got v=%d rest=%v err=%v", v, rest, err)
	}
}

func TestReadIntegerNegative(t *testing.T) {
	_, v, err := ReadInteger([]byte{0x02, 0x01, 0xff})
	if err != nil || v != -1 {
		t.Errorf("got v=%d err=%v", v, err)
	}
}

func TestReadUint32OverflowOnNegative(t *testing.T) {
	_, _, err := ReadUint32([]byte{0x02, 0x01, 0xff})
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReadUint64FromContentWide(t *testing.T) {
	// INTEGER content with a leading zero pad octet (to keep sign bit
	// clear) for a value whose high bit would otherwise look negative.
	given := []byte{0x02, 0x05, 0x00, 0xff, 0xff, 0xff, 0xff}
	_, v, err := ReadUint64(given)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v != 0xffffffff {
		t.Errorf("got %d", v)
	}
}

func TestReadOID(t *testing.T) {
	// 1.3.6.1.2.1.1.2.0
	given := []byte{0x06, 0x08, 0x2b, 0x06, 0x01, 0x02, 0x01, 0x01, 0x02, 0x00}
	_, arcs, err := ReadOID(given)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []uint32{1, 3, 6, 1, 2, 1, 1, 2, 0}
	if len(arcs) != len(want) {
		t.Fatalf("got %v", arcs)
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("arc %d: got %d want %d", i, arcs[i], want[i])
		}
	}
}

func TestReadOctetStringBorrowsInput(t *testing.T) {
	given := []byte{0x04, 0x06, 'p', 'u', 'b', 'l', 'i', 'c'}
	_, content, err := ReadOctetString(given)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(content) != "public" {
		t.Errorf("got %q", content)
	}
	// Zero-copy witness: the returned slice must point inside given.
	if &given[2] != &content[0] {
		t.Errorf("content does not point into input buffer")
	}
}

func TestReadNullRejectsContent(t *testing.T) {
	_, err := ReadNull([]byte{0x05, 0x01, 0x00})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("expected ErrInvalidTag, got %v", err)
	}
}

func TestReadSequenceWrongTag(t *testing.T) {
	_, _, err := ReadSequence([]byte{0x02, 0x01, 0x00})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("expected ErrInvalidTag, got %v", err)
	}
}

func fuzzNeverPanics(t *testing.T, f func([]byte)) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panicked: %v", r)
		}
	}()
	f(nil)
}

func TestPrimitivesNeverPanicOnEmptyInput(t *testing.T) {
	fuzzNeverPanics(t, func(b []byte) { ReadHeader(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadAny(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadSequence(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadOID(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadOctetString(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadBitString(b) })
	fuzzNeverPanics(t, func(b []byte) { ReadNull(b) })
}
