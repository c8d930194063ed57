package utils

import (
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\system32\\cmd.pdf", "cmd.pdf"},
		{"my resume (final).pdf", "my_resume_final_.pdf"},
		{"Jöhn Døe.pdf", "J_hn_D_e.pdf"},
		{"...", ""},
		{"", ""},
		{"/uploads/a.pdf", "a.pdf"},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
