package utils

import "unicode/utf8"

// IsBinary reports whether data looks like binary rather than text: any NUL
// byte or invalid UTF-8 disqualifies it from being dumped verbatim.
func IsBinary(data []byte) bool {
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
