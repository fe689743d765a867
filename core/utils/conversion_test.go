package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"int64", int64(7), 7},
		{"float64", float64(1921), 1921},
		{"string", " 209 ", 209},
		{"bytes", []byte("3"), 3},
		{"garbage", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "74a", ToString(" 74a "))
	assert.Equal(t, "74", ToString(float64(74)))
	assert.Equal(t, "12", ToString(12))
}

func TestToCount(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"nil", nil, 0, false},
		{"blank", "", 0, false},
		{"spaces", "   ", 0, false},
		{"string", "2", 2, false},
		{"negative", "-1", -1, false},
		{"int", 5, 5, false},
		{"float whole", float64(3), 3, false},
		{"float fraction", 1.5, 0, true},
		{"word", "two", 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
