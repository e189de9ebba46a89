package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigUnion(t *testing.T) {
	s := sig([]byte("aab"))
	assert.Equal(t, (uint64(1)<<('a'&63))|(uint64(1)<<('b'&63)), s)
}

func TestAdmitsIsNecessaryForZeroErrorMatch(t *testing.T) {
	recordSig := sig([]byte("hello world"))
	patternSig := sig([]byte("world"))

	assert.True(t, admits(recordSig, patternSig))

	missingSig := sig([]byte("xyz"))
	assert.False(t, admits(recordSig, missingSig))
}

func TestRelaxSignatureClearsKBitsInFirstOccurrenceOrder(t *testing.T) {
	pattern := []byte("cab") // c, a, b: three distinct bins
	full := sig(pattern)

	relaxed1 := relaxSignature(pattern, full, 1)
	// Clearing one bit must still leave the relaxation a subset of
	// the full signature.
	assert.Equal(t, full&^(uint64(1)<<('c'&63)), relaxed1)

	relaxed2 := relaxSignature(pattern, full, 2)
	assert.Equal(t, full&^(uint64(1)<<('c'&63))&^(uint64(1)<<('a'&63)), relaxed2)

	// Clearing zero bits is a no-op.
	assert.Equal(t, full, relaxSignature(pattern, full, 0))
}

func TestRelaxSignatureNeverClearsMoreThanDistinctBins(t *testing.T) {
	pattern := []byte("aaaa")
	full := sig(pattern)

	relaxed := relaxSignature(pattern, full, 3)
	assert.Equal(t, full&^(uint64(1)<<('a'&63)), relaxed)
}
