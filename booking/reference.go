package booking

import "math/rand"

const referencePrefix = "SW-"

// no 0/O or 1/I so the reference survives being read out over the phone
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceLength = 6

// newReference generates the display-only booking reference shown to the
// customer and forwarded for support correlation. It is not unique and must
// never be used as a key; the rental API assigns the real identifier.
func newReference() string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return referencePrefix + string(b)
}
