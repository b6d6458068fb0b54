package testkit

import "testing"

func TestCheckPreserved(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		ok      bool
	}{
		{"identical", "a\n  b\n", "a\n  b\n", true},
		{"dedent", "x\n    {\n    }\n", "x\n{\n}\n", true},
		{"trailing stripped", "a  \r\n", "a\n", true},
		{"empty", "", "", true},
		{"missing final newline", "a", "a\n", true},
		{"line dropped", "a\nb\n", "a\n", false},
		{"content changed", "a = 1;\n", "a = 2;\n", false},
		{"tab removed", "\tx\n", "x\n", false},
		{"trailing kept", "a \n", "a \n", false},
		{"spaces added", "x\n", "  x\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPreserved([]byte(tt.in), []byte(tt.out))
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
