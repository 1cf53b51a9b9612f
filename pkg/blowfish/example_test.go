package blowfish_test

import (
	"fmt"

	"github.com/dcrodman/blowfish/pkg/blowfish"
)

// ExampleNewCipher encrypts the all zero block with the all zero key.
func ExampleNewCipher() {
	c, err := blowfish.NewCipher(make([]byte, 8))
	if err != nil {
		panic(err)
	}

	buf := make([]byte, blowfish.BlockSize)
	c.Encrypt(buf, buf, len(buf))
	fmt.Printf("%x\n", buf)

	c.Decrypt(buf, buf, len(buf))
	fmt.Printf("%x\n", buf)

	// Output:
	// 4ef997456198dd78
	// 0000000000000000
}

// ExampleCipher_EncryptBlock works on the two 32-bit halves directly.
func ExampleCipher_EncryptBlock() {
	c, _ := blowfish.NewCipher([]byte{0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10})

	l, r := c.EncryptBlock(0x01234567, 0x89abcdef)
	fmt.Printf("%08x%08x\n", l, r)

	l, r = c.DecryptBlock(l, r)
	fmt.Printf("%08x%08x\n", l, r)

	// Output:
	// 0aceab0fc6a0a28d
	// 0123456789abcdef
}

// ExampleCipher_Encrypt shows that a trailing partial block is left alone.
func ExampleCipher_Encrypt() {
	c, _ := blowfish.NewCipher(make([]byte, 8))

	src := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0xaa, 0xbb, 0xcc}
	dst := make([]byte, len(src))
	c.Encrypt(dst, src, len(src))
	fmt.Printf("%x\n", dst)

	// Output:
	// 4ef997456198dd78aabbcc
}
