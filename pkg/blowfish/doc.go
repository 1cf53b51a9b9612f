// Package blowfish implements Bruce Schneier's Blowfish block cipher: a
// 16-round Feistel network over 64-bit blocks with key-dependent S-boxes.
//
// Only the raw primitive is provided. Encrypt and Decrypt treat a buffer as a
// run of independent 8-byte blocks; padding, chaining modes, IVs and key
// management are left to the caller. Block adapts a Cipher to
// crypto/cipher.Block for use with the standard library's modes.
//
// Words are read from and written to buffers big-endian, which makes the
// output interoperable with other Blowfish implementations.
package blowfish
