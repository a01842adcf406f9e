package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		ref := newReference()
		assert.True(t, strings.HasPrefix(ref, referencePrefix))
		assert.Len(t, ref, len(referencePrefix)+referenceLength)
		for _, c := range ref[len(referencePrefix):] {
			assert.Contains(t, referenceAlphabet, string(c))
		}
	}
}
