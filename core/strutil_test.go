package core

import "testing"

func TestUtoa(t *testing.T) {
	tests := []struct {
		n    uint32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{40, "40"},
		{4294967295, "4294967295"},
	}
	for _, tt := range tests {
		if got := utoa(tt.n); got != tt.want {
			t.Errorf("utoa(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAppendPadded(t *testing.T) {
	tests := []struct {
		n    uint32
		want string
	}{
		{0, "00"},
		{9, "09"},
		{10, "10"},
		{123, "123"},
	}
	for _, tt := range tests {
		if got := string(appendPadded(nil, tt.n)); got != tt.want {
			t.Errorf("appendPadded(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
