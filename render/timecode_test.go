package render

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		sep     byte
		want    string
	}{
		{"zero srt", 0, SRTSeparator, "00:00:00,000"},
		{"zero vtt", 0, VTTSeparator, "00:00:00.000"},
		{"sub-second", 1.5, VTTSeparator, "00:00:01.500"},
		{"hour minute second", 3725.4, SRTSeparator, "01:02:05,400"},
		{"minute boundary", 60, SRTSeparator, "00:01:00,000"},
		{"hour boundary", 3600, VTTSeparator, "01:00:00.000"},
		{"truncates not rounds", 1.9999, SRTSeparator, "00:00:01,999"},
		{"truncates half millisecond", 1.9995, VTTSeparator, "00:00:01.999"},
		{"double digit hours", 36000.25, SRTSeparator, "10:00:00,250"},
		{"three digit hours", 360000, SRTSeparator, "100:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds, tt.sep))
		})
	}
}

func TestFormatSecondsShape(t *testing.T) {
	srtRE := regexp.MustCompile(`^\d+:\d\d:\d\d,\d\d\d$`)
	vttRE := regexp.MustCompile(`^\d+:\d\d:\d\d\.\d\d\d$`)

	for s := 0.0; s < 400000; s = s*1.7 + 0.137 {
		assert.Regexp(t, srtRE, FormatSeconds(s, SRTSeparator), s)
		assert.Regexp(t, vttRE, FormatSeconds(s, VTTSeparator), s)
	}
}
