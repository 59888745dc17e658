package tokenizer

import "testing"

func TestEstimator_Count(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"one char", "a", 1},
		{"exactly one token", "abcd", 1},
		{"rounds up", "abcde", 2},
		{"longer text", "the quick brown fox!", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Estimator{}).Count(tt.text); got != tt.want {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c, err := NewCodec()
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	if got := c.Count(""); got != 0 {
		t.Errorf("Count(\"\") = %d, want 0", got)
	}

	first := c.Count("hello world, hello tokens")
	if first <= 0 {
		t.Fatalf("Count returned %d, want > 0", first)
	}
	if second := c.Count("hello world, hello tokens"); second != first {
		t.Errorf("repeated Count = %d, want %d", second, first)
	}
}

func TestDefault_NotNil(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default returned nil counter")
	}
}
