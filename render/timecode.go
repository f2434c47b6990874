package render

import "fmt"

// Millisecond separators for the subtitle timestamp notations.
const (
	SRTSeparator = ','
	VTTSeparator = '.'
)

// FormatSeconds renders a non-negative offset in seconds as HH:MM:SS<sep>mmm.
//
// Fractions are truncated, not rounded: 1.9995 renders as 00:00:01<sep>999.
// Hours are not capped, so offsets of 100h or more produce a wider hour field.
// Negative, NaN and out-of-int64-range inputs are not supported and render
// unspecified text.
func FormatSeconds(seconds float64, sep byte) string {
	whole := int64(seconds)
	millis := int64((seconds - float64(whole)) * 1000)

	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}
