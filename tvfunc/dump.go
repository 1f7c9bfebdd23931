// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// Str renders f as a string of '0'/'1' characters (base 2) or hex
// digits (base 16), one truth-table entry per input assignment for
// base 2, one nibble per 4 assignments for base 16. base must be 2 or
// 16.
func (f TvFunc) Str(base int) (string, error) {
	switch base {
	case 2:
		total := 1 << uint(f.ni)
		var b strings.Builder
		b.Grow(total)
		for pos := 0; pos < total; pos++ {
			b.WriteByte(byte('0' + f.Value(pos)))
		}
		return b.String(), nil
	case 16:
		total := 1 << uint(f.ni)
		nibbles := (total + 3) / 4
		var b strings.Builder
		b.Grow(nibbles)
		for i := nibbles - 1; i >= 0; i-- {
			v := 0
			for j := 0; j < 4; j++ {
				pos := i*4 + j
				if pos < total && f.Value(pos) == 1 {
					v |= 1 << uint(j)
				}
			}
			b.WriteByte("0123456789abcdef"[v])
		}
		return b.String(), nil
	default:
		return "", &ymerr.ShapePrecondition{Op: "Str", Detail: "base must be 2 or 16"}
	}
}

// Print writes f's binary truth-table string to w.
func (f TvFunc) Print(w io.Writer) error {
	s, err := f.Str(2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// Dump writes f to w as the input count followed by its raw 64-bit
// words, all big-endian.
func (f TvFunc) Dump(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint32(f.ni)); err != nil {
		return err
	}
	for _, word := range f.words {
		if err := binary.Write(w, binary.BigEndian, uint64(word)); err != nil {
			return err
		}
	}
	return nil
}

// Restore reads a TvFunc previously written by Dump.
func Restore(r io.Reader) (TvFunc, error) {
	var ni uint32
	if err := binary.Read(r, binary.BigEndian, &ni); err != nil {
		return TvFunc{}, &ymerr.DeserializeError{Detail: "reading input count: " + err.Error()}
	}
	if int(ni) > MaxNi {
		return TvFunc{}, &ymerr.DeserializeError{Detail: "input count exceeds MaxNi"}
	}
	f, err := Zero(int(ni))
	if err != nil {
		return TvFunc{}, err
	}
	for i := range f.words {
		var word uint64
		if err := binary.Read(r, binary.BigEndian, &word); err != nil {
			return TvFunc{}, &ymerr.DeserializeError{Detail: "reading word: " + err.Error()}
		}
		f.words[i] = WordType(word)
	}
	f.normalize()
	return f, nil
}
