package urlcheck

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://google.com", true},
		{"http://www.twitter.com", true},
		{"http://x.com/path?q=1#frag", true},
		{"ftp://files.example.org", true},
		{"", false},
		{"teste", false},
		{"google.com", false},
		{"https://", false},
		{" https://google.com", false},
		{"http://[::1", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Fatalf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
