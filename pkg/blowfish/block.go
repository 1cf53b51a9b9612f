package blowfish

const rounds = 16

// feistel is the Blowfish round function. Additions wrap modulo 2^32.
func feistel(x uint32, s *State) uint32 {
	return ((s.S[0][byte(x>>24)] + s.S[1][byte(x>>16)]) ^ s.S[2][byte(x>>8)]) + s.S[3][byte(x)]
}

func encryptBlock(l, r uint32, s *State) (uint32, uint32) {
	for i := 0; i < rounds; i++ {
		l ^= s.P[i]
		r ^= feistel(l, s)
		l, r = r, l
	}
	// Undo the last swap.
	l, r = r, l
	r ^= s.P[rounds]
	l ^= s.P[rounds+1]
	return l, r
}

func decryptBlock(l, r uint32, s *State) (uint32, uint32) {
	for i := 0; i < rounds; i++ {
		l ^= s.P[rounds+1-i]
		r ^= feistel(l, s)
		l, r = r, l
	}
	l, r = r, l
	r ^= s.P[1]
	l ^= s.P[0]
	return l, r
}
