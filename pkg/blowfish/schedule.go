package blowfish

import "github.com/dcrodman/blowfish/internal/core/bytes"

// Schedule derives the P-array and S-boxes from key, replacing whatever state
// c held before. It fails with a KeySizeError for an empty key.
func (c *Cipher) Schedule(key []byte) error {
	if len(key) == 0 {
		return KeySizeError(len(key))
	}

	var s State
	s.P = initialP
	s.S = initialS

	// XOR the key into the P-array, wrapping around the key words when
	// there are fewer than 18 of them.
	words := keyWords(key)
	for i := range s.P {
		s.P[i] ^= words[i%len(words)]
	}

	// Each encryption of the running block sees the tables as updated so far.
	var l, r uint32
	for i := 0; i < len(s.P); i += 2 {
		l, r = encryptBlock(l, r, &s)
		s.P[i], s.P[i+1] = l, r
	}
	for i := 0; i < len(s.S)*len(s.S[0]); i += 2 {
		l, r = encryptBlock(l, r, &s)
		s.S[i/256][i%256], s.S[i/256][i%256+1] = l, r
	}

	c.state = s
	return nil
}

// keyWords packs the key into big-endian words, cycling through the key
// bytes. len(key)/gcd(len(key), 4) words cover a whole number of key periods,
// so repeating the result is the same as continuing to cycle the key.
func keyWords(key []byte) []uint32 {
	n := len(key) / gcd(len(key), 4)
	words := make([]uint32, n)
	for i := range words {
		words[i] = bytes.CyclicWord(key, 4*i)
	}
	return words
}

// gcd returns the greatest common divisor of a and b using Euclid's
// algorithm. Both must be positive.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
