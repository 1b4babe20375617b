// Package lzstring implements the URI-component variant of the lz-string
// codec used by the palette picker front-end to pack share tokens.
package lzstring

import (
	"errors"
	"strings"
	"unicode/utf16"
)

const uriSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"

// ErrInvalidInput is returned when a compressed string does not describe a
// complete lz-string stream.
var ErrInvalidInput = errors.New("lzstring: invalid compressed input")

// ErrOutputTooLarge is returned when decompression would exceed the caller's limit
var ErrOutputTooLarge = errors.New("lzstring: decompressed output exceeds limit")

var uriSafeValues = func() [128]int {
	var table [128]int
	for i := 0; i < len(uriSafeAlphabet); i++ {
		table[uriSafeAlphabet[i]] = i
	}
	return table
}()

// uriSafeValue maps one UTF-16 unit to its 6-bit value. Units outside the
// alphabet read as zero, as the browser implementation does.
func uriSafeValue(u uint16) int {
	if u >= 128 {
		return 0
	}
	return uriSafeValues[u]
}

// CompressToEncodedURIComponent compresses input into a string made only of
// URI component safe characters.
func CompressToEncodedURIComponent(input string) string {
	return compress(utf16.Encode([]rune(input)), 6, func(v int) byte { return uriSafeAlphabet[v] })
}

// DecompressFromEncodedURIComponent reverses CompressToEncodedURIComponent.
// Spaces are read back as '+', since form decoding of a query string turns
// '+' into a space.
func DecompressFromEncodedURIComponent(input string) (string, error) {
	return DecompressFromEncodedURIComponentLimit(input, 0)
}

// DecompressFromEncodedURIComponentLimit is DecompressFromEncodedURIComponent
// that stops with ErrOutputTooLarge as soon as the output grows past maxUnits
// UTF-16 units. A maxUnits of zero or less means no limit.
func DecompressFromEncodedURIComponentLimit(input string, maxUnits int) (string, error) {
	if input == "" {
		return "", ErrInvalidInput
	}
	units := utf16.Encode([]rune(strings.ReplaceAll(input, " ", "+")))
	out, err := decompress(len(units), 32, maxUnits, func(i int) int {
		if i >= len(units) {
			return 0
		}
		return uriSafeValue(units[i])
	})
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(out)), nil
}

// UTF16Len reports the length of s in UTF-16 code units, which is how the
// front-end measures token and payload sizes.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
