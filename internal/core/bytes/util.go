package bytes

// Words are always packed most significant byte first, regardless of the
// host's byte order.

// BytesToWord condenses four bytes into a big-endian 32-bit value.
func BytesToWord(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// WordToBytes splits w into its four bytes, most significant first.
func WordToBytes(w uint32) (b0, b1, b2, b3 byte) {
	return byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)
}

// Word reads the big-endian word stored in b[0:4]. Panics if b is shorter
// than four bytes.
func Word(b []byte) uint32 {
	_ = b[3]
	return BytesToWord(b[0], b[1], b[2], b[3])
}

// PutWord writes w into b[0:4] in big-endian order.
func PutWord(b []byte, w uint32) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = WordToBytes(w)
}

// CyclicWord builds a word from the four bytes of src starting at offset,
// wrapping around to the start of src as many times as needed. src must not
// be empty.
func CyclicWord(src []byte, offset int) uint32 {
	n := len(src)
	return BytesToWord(
		src[offset%n],
		src[(offset+1)%n],
		src[(offset+2)%n],
		src[(offset+3)%n],
	)
}
