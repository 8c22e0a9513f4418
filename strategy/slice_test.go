package strategy

import "testing"

func TestSliceLenAndString(t *testing.T) {
	tests := []struct {
		name    string
		s       Slice
		wantLen int
		wantStr string
	}{
		{"empty", Slice{Start: 3, Stop: 3}, 0, "[3,3)"},
		{"single", Slice{Start: 0, Stop: 1}, 1, "[0,1)"},
		{"range", Slice{Start: 2, Stop: 5}, 3, "[2,5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.s.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}
