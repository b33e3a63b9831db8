package pattern

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/seqwalk/quant"
)

// fingerprintDomain versions the fingerprint format, allowing future
// algorithm migration without silent collisions.
const fingerprintDomain = "seqwalk/pattern/v1"

// Canonical returns the NFC normalization of a label. Parse stores labels
// canonically; predicates comparing raw labels should go through Same.
func Canonical(label string) string {
	return norm.NFC.String(label)
}

// Same reports canonical label equality. This is the comparability
// predicate the CLI and harness inject into the engine.
func Same(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

// Fingerprint computes a stable identity for a dest/src sequence pair:
// SHA-256 over a domain tag and the canonical rendering of both sides,
// with null separators against boundary ambiguity. Consumers layering a
// memoized predicate or result cache around the engine key it by this.
func Fingerprint(dest, src []quant.Item[string]) string {
	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(strings.Join(RenderSeq(dest), " ")))
	h.Write([]byte{0x00})
	h.Write([]byte(strings.Join(RenderSeq(src), " ")))
	return hex.EncodeToString(h.Sum(nil))
}
