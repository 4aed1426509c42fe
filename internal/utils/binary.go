package utils

import "unicode/utf8"

// sniffLength caps how many bytes are inspected when classifying content.
const sniffLength = 8000

// IsBinary reports whether data appears to be binary rather than text.
// Content is binary when it is not valid UTF-8 or contains a NUL byte.
func IsBinary(data []byte) bool {
	if len(data) > sniffLength {
		data = data[:sniffLength]
	}
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return true
	}
	for _, b := range data {
		if b == 0 {
			return true
		}
	}
	return false
}
