// Package vectors holds the Blowfish known-answer test vectors used to check
// the cipher against the published reference values.
package vectors

import (
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/dcrodman/blowfish/internal/core/bytes"
)

//go:embed vectors.yaml
var builtin []byte

// ErrMalformed is wrapped by every error caused by an unusable vector.
var ErrMalformed = errors.New("malformed vector")

// Vector is one key/plaintext/ciphertext triple, hex encoded.
type Vector struct {
	// Name identifies the vector in reports, e.g. "ecb/7".
	Name       string `yaml:"-"`
	Key        string `yaml:"key"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

type catalogue struct {
	ECB    []Vector `yaml:"ecb"`
	SetKey []Vector `yaml:"set_key"`
}

// Builtin returns the vectors compiled into the binary.
func Builtin() ([]Vector, error) {
	return Parse(builtin)
}

// Load reads a vector catalogue from a YAML file.
func Load(path string) ([]Vector, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vectors file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue with "ecb" and "set_key" sections. Unknown
// fields are rejected so that typos don't silently drop vectors.
func Parse(data []byte) ([]Vector, error) {
	var c catalogue
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parsing vectors: %w", err)
	}

	all := make([]Vector, 0, len(c.ECB)+len(c.SetKey))
	for i, v := range c.ECB {
		v.Name = fmt.Sprintf("ecb/%d", i)
		all = append(all, v)
	}
	for i, v := range c.SetKey {
		v.Name = fmt.Sprintf("set_key/%d", i)
		all = append(all, v)
	}
	return all, nil
}

// Decoded is the binary form of a Vector. Blocks are split into their left
// and right halves.
type Decoded struct {
	Name       string
	Key        []byte
	Plaintext  [2]uint32
	Ciphertext [2]uint32
}

// Decode converts the hex fields of v.
func (v Vector) Decode() (Decoded, error) {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return Decoded{}, fmt.Errorf("%s: key: %v: %w", v.Name, err, ErrMalformed)
	}
	if len(key) == 0 {
		return Decoded{}, fmt.Errorf("%s: empty key: %w", v.Name, ErrMalformed)
	}

	pt, err := decodeBlock(v.Plaintext)
	if err != nil {
		return Decoded{}, fmt.Errorf("%s: plaintext: %w", v.Name, err)
	}
	ct, err := decodeBlock(v.Ciphertext)
	if err != nil {
		return Decoded{}, fmt.Errorf("%s: ciphertext: %w", v.Name, err)
	}

	return Decoded{Name: v.Name, Key: key, Plaintext: pt, Ciphertext: ct}, nil
}

func decodeBlock(s string) ([2]uint32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return [2]uint32{}, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	if len(b) != 8 {
		return [2]uint32{}, fmt.Errorf("block is %d bytes, want 8: %w", len(b), ErrMalformed)
	}
	return [2]uint32{bytes.Word(b[0:4]), bytes.Word(b[4:8])}, nil
}

// Bytes returns the block as 8 big-endian bytes.
func Bytes(block [2]uint32) []byte {
	b := make([]byte, 8)
	bytes.PutWord(b[0:4], block[0])
	bytes.PutWord(b[4:8], block[1])
	return b
}
