package suffixdoubling

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// applyTransforms prepares text and patterns the same way so both are
// compared in one form. A Caser keeps state between calls, so a fresh one
// is made each time.
func applyTransforms(s string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		s = cases.Fold().String(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return s
}
