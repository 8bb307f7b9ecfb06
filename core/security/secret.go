// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

const redacted = "[REDACTED]"

// Secret wraps credential bytes read from a terminal or produced by the
// generator. Formatting, JSON and text encoding all redact the value.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so `%v`, `%#v` and `%q` are redacted too.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the plain value. Only call it where the credential is
// meant to leave the process (stdout, clipboard, the analyzer).
func (s Secret) Reveal() string { return string(s) }

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}

// Redact returns a placeholder that keeps only the length of pw, for log lines.
func Redact(pw string) string {
	return fmt.Sprintf("%s(len=%d)", redacted, len([]rune(pw)))
}

// Fingerprint returns a hex blake2b-256 digest of pw. History uses it to
// detect reuse without comparing plaintext.
func Fingerprint(pw string) string {
	sum := blake2b.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}
