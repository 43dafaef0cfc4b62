package wad

import (
	"fmt"
	"unicode/utf8"
)

const name8Len = 8

// trimName8 decodes a fixed 8-byte WAD name field. The field is cut at the
// first null or control byte (names are end-padded with nulls); the
// remaining bytes must be valid text or the decode fails.
func trimName8(buf []byte) (string, error) {
	end := len(buf)
	for i, b := range buf {
		if b < 0x20 {
			end = i
			break
		}
	}
	s := buf[:end]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: name field %q is not valid text", ErrFormat, buf)
	}
	return string(s), nil
}

// trimTextureName decodes an 8-byte texture name field. The literal
// placeholder "-" means "no texture" and decodes to the empty string.
func trimTextureName(buf []byte) (string, error) {
	s, err := trimName8(buf)
	if err != nil {
		return "", err
	}
	if s == "-" {
		return "", nil
	}
	return s, nil
}
