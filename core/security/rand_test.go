// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package security

import (
	"bytes"
	"errors"
	"testing"
)

func TestCryptoRandBounds(t *testing.T) {
	r := NewCryptoRand()
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v, err := r.Intn(7)
		if err != nil {
			t.Fatalf("Intn: %v", err)
		}
		if v < 0 || v >= 7 {
			t.Fatalf("value %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Fatalf("expected all 7 values to appear, saw %d", len(seen))
	}
}

func TestIntnRejectsEmptyRange(t *testing.T) {
	if _, err := NewCryptoRand().Intn(0); !errors.Is(err, ErrInvalidBound) {
		t.Fatalf("expected ErrInvalidBound, got %v", err)
	}
}

func TestReaderRandPropagatesExhaustion(t *testing.T) {
	r := NewReaderRand(bytes.NewReader(nil))
	if _, err := r.Intn(10); err == nil {
		t.Fatalf("expected error from exhausted reader")
	}
}

func TestReaderRandReplaysStream(t *testing.T) {
	// rand.Int masks to the bit length of n-1, so 0x03 with n=4 yields 3.
	r := NewReaderRand(bytes.NewReader([]byte{0x03, 0x00}))
	v, err := r.Intn(4)
	if err != nil || v != 3 {
		t.Fatalf("expected 3, got %d (%v)", v, err)
	}
	v, err = r.Intn(4)
	if err != nil || v != 0 {
		t.Fatalf("expected 0, got %d (%v)", v, err)
	}
}

func TestChanceEdges(t *testing.T) {
	r := NewCryptoRand()
	if ok, _ := Chance(r, 0); ok {
		t.Fatalf("0%% chance returned true")
	}
	if ok, _ := Chance(r, 100); !ok {
		t.Fatalf("100%% chance returned false")
	}
}

func TestPick(t *testing.T) {
	set := []rune("xyz")
	for i := 0; i < 50; i++ {
		c, err := Pick(NewCryptoRand(), set)
		if err != nil {
			t.Fatalf("Pick: %v", err)
		}
		if c != 'x' && c != 'y' && c != 'z' {
			t.Fatalf("Pick returned %q", c)
		}
	}
}
