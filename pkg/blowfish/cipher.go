package blowfish

import (
	"crypto/cipher"
	"errors"
	"strconv"

	"github.com/dcrodman/blowfish/internal/core/bytes"
)

// The Blowfish block size in bytes.
const BlockSize = 8

// ErrInvalidKey is matched by every error returned for a key that cannot be
// scheduled.
var ErrInvalidKey = errors.New("blowfish: invalid key")

// KeySizeError reports the length of a key that cannot be scheduled.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "blowfish: invalid key size " + strconv.Itoa(int(k))
}

func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKey
}

// State is the key-dependent material of a Cipher: the 18 round keys and the
// four substitution boxes.
type State struct {
	P [18]uint32
	S [4][256]uint32
}

// A Cipher is an instance of Blowfish encryption using a particular key.
//
// Once scheduled, a Cipher is only read by the transform methods and may be
// shared between goroutines. Schedule must not be called while any transform
// on the same Cipher is in flight.
type Cipher struct {
	state State
}

// NewCipher creates and returns a Cipher scheduled with key. Any non-empty key
// is accepted; the conventional Blowfish key is 1 to 56 bytes long.
func NewCipher(key []byte) (*Cipher, error) {
	c := &Cipher{}
	if err := c.Schedule(key); err != nil {
		return nil, err
	}
	return c, nil
}

// State returns a copy of the scheduled P-array and S-boxes.
func (c *Cipher) State() State {
	return c.state
}

// EncryptBlock encrypts the 64-bit block made of the halves l and r.
func (c *Cipher) EncryptBlock(l, r uint32) (uint32, uint32) {
	return encryptBlock(l, r, &c.state)
}

// DecryptBlock reverses EncryptBlock.
func (c *Cipher) DecryptBlock(l, r uint32) (uint32, uint32) {
	return decryptBlock(l, r, &c.state)
}

// Encrypt copies the first length bytes of src into dst, unless both are the
// same buffer, and then encrypts every complete 8-byte block of dst in place.
// Blocks are independent of each other; no chaining is applied.
//
// length should be a multiple of BlockSize. The trailing length%BlockSize
// bytes are never encrypted, so callers that need them transformed have to
// pad the buffer themselves.
func (c *Cipher) Encrypt(dst, src []byte, length int) {
	c.transform(dst, src, length, encryptBlock)
}

// Decrypt is the inverse of Encrypt, with the same buffer rules.
func (c *Cipher) Decrypt(dst, src []byte, length int) {
	c.transform(dst, src, length, decryptBlock)
}

func (c *Cipher) transform(dst, src []byte, length int, fn func(l, r uint32, s *State) (uint32, uint32)) {
	dst, src = dst[:length], src[:length]
	if !sameBuffer(dst, src) {
		copy(dst, src)
	}

	for i := 0; i+BlockSize <= length; i += BlockSize {
		block := dst[i : i+BlockSize]
		l, r := fn(bytes.Word(block[0:4]), bytes.Word(block[4:8]), &c.state)
		bytes.PutWord(block[0:4], l)
		bytes.PutWord(block[4:8], r)
	}
}

func sameBuffer(a, b []byte) bool {
	return len(a) == 0 || len(b) == 0 || &a[0] == &b[0]
}

// Block returns c as a crypto/cipher.Block so that callers can layer their
// own chaining mode on top of the raw transform.
func (c *Cipher) Block() cipher.Block {
	return blockAdapter{c}
}

type blockAdapter struct {
	c *Cipher
}

func (b blockAdapter) BlockSize() int { return BlockSize }

func (b blockAdapter) Encrypt(dst, src []byte) {
	l, r := b.c.EncryptBlock(bytes.Word(src[0:4]), bytes.Word(src[4:8]))
	bytes.PutWord(dst[0:4], l)
	bytes.PutWord(dst[4:8], r)
}

func (b blockAdapter) Decrypt(dst, src []byte) {
	l, r := b.c.DecryptBlock(bytes.Word(src[0:4]), bytes.Word(src[4:8]))
	bytes.PutWord(dst[0:4], l)
	bytes.PutWord(dst[4:8], r)
}
