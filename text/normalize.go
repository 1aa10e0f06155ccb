package text

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode normalization form C, so that decomposed
// input (a + combining ring) and precomposed input (å) produce the same block
// text.
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
