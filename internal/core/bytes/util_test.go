package bytes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBytesToWord(t *testing.T) {
	type args struct {
		b0, b1, b2, b3 byte
	}
	tests := []struct {
		name string
		args args
		want uint32
	}{
		{
			name: "zero",
			args: args{0, 0, 0, 0},
			want: 0,
		},
		{
			name: "most significant byte first",
			args: args{0x01, 0x23, 0x45, 0x67},
			want: 0x01234567,
		},
		{
			name: "all bits set",
			args: args{0xff, 0xff, 0xff, 0xff},
			want: 0xffffffff,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToWord(tt.args.b0, tt.args.b1, tt.args.b2, tt.args.b3); got != tt.want {
				t.Errorf("BytesToWord() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestWordToBytes(t *testing.T) {
	b0, b1, b2, b3 := WordToBytes(0x89abcdef)
	got := []byte{b0, b1, b2, b3}
	if diff := cmp.Diff([]byte{0x89, 0xab, 0xcd, 0xef}, got); diff != "" {
		t.Errorf("WordToBytes() returned the wrong bytes; diff:\n%s", diff)
	}
}

func TestWordAndPutWord(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef, 0x11, 0x22, 0x33, 0x44}

	if got := Word(buf[4:]); got != 0x11223344 {
		t.Errorf("Word() = %#08x, want 0x11223344", got)
	}

	PutWord(buf, 0xcafef00d)
	expected := []byte{0xca, 0xfe, 0xf0, 0x0d, 0x11, 0x22, 0x33, 0x44}
	if diff := cmp.Diff(expected, buf); diff != "" {
		t.Errorf("PutWord() wrote outside of its word or in the wrong order; diff:\n%s", diff)
	}
}

func TestWord_PanicsOnShortSlice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Word() to panic on a 3 byte slice")
		}
	}()
	Word([]byte{1, 2, 3})
}

func TestCyclicWord(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		offset int
		want   uint32
	}{
		{
			name:   "aligned within source",
			src:    []byte{1, 2, 3, 4, 5, 6, 7, 8},
			offset: 4,
			want:   0x05060708,
		},
		{
			name:   "wraps past the end",
			src:    []byte{1, 2, 3, 4, 5, 6},
			offset: 4,
			want:   0x05060102,
		},
		{
			name:   "single byte key repeats",
			src:    []byte{0xf0},
			offset: 8,
			want:   0xf0f0f0f0,
		},
		{
			name:   "three byte key",
			src:    []byte{0xf0, 0xe1, 0xd2},
			offset: 4,
			want:   0xe1d2f0e1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CyclicWord(tt.src, tt.offset); got != tt.want {
				t.Errorf("CyclicWord() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}
