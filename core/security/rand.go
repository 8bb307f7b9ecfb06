// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidBound is returned when a caller asks for a value in an empty range.
var ErrInvalidBound = errors.New("random bound must be positive")

// Rand yields uniformly distributed integers. Implementations must be safe
// for concurrent use.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) (int, error)
}

// readerRand draws from an io.Reader using big.Int rejection sampling, so
// every index is equally likely regardless of n.
type readerRand struct {
	r io.Reader
}

// NewCryptoRand returns a Rand backed by crypto/rand.
func NewCryptoRand() Rand {
	return readerRand{r: rand.Reader}
}

// NewReaderRand returns a Rand that draws bytes from r. Production code
// should use NewCryptoRand; this exists so tests can replay fixed streams.
// The reader must be safe for concurrent use if the Rand is shared.
func NewReaderRand(r io.Reader) Rand {
	return readerRand{r: r}
}

func (c readerRand) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(c.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

// Pick returns a uniformly chosen element of set.
func Pick(r Rand, set []rune) (rune, error) {
	i, err := r.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// Chance reports true with the given probability in percent.
func Chance(r Rand, percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	v, err := r.Intn(100)
	if err != nil {
		return false, err
	}
	return v < percent, nil
}
