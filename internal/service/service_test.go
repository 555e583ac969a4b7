package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoomID(t *testing.T) {
	tests := []struct {
		raw  string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{"+1", 1, true},
		{" 7 ", 7, true},
		{"007", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"++1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseRoomID(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
