package rop

import "testing"

func TestIsNil(t *testing.T) {
	t.Parallel()
	var nilPtr *int
	var nilErr error
	var nilFunc func()
	var nilChan chan int
	n := 1

	tests := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"nil interface", nil, true},
		{"nil error", nilErr, true},
		{"nil pointer", nilPtr, true},
		{"nil func", nilFunc, true},
		{"nil chan", nilChan, true},
		{"pointer", &n, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"nil slice", []int(nil), false},
		{"nil map", map[string]int(nil), false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		if got := IsNil(tt.in); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
