package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesDefaultSet(t *testing.T) {
	// Every documented default extension is accepted without an explicit
	// allow-list.
	for _, ext := range DefaultExtensions {
		assert.True(t, Matches("file"+ext, nil), "default extension %s should match", ext)
	}

	// An unlisted extension is rejected.
	assert.False(t, Matches("setup.exe", nil))
	assert.False(t, Matches("archive.tar.gz", nil))
}

func TestMatchesCaseInsensitive(t *testing.T) {
	tests := []struct {
		filename string
		allowed  []string
		want     bool
	}{
		{"A.ZIP", []string{".zip"}, true},
		{"a.zip", []string{".ZIP"}, true},
		{"Robot.Ex4", []string{".ex4"}, true},
		{"notes.TXT", []string{".pdf"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.filename, tt.allowed), "Matches(%q, %v)", tt.filename, tt.allowed)
	}
}

func TestMatchesEmptyFilename(t *testing.T) {
	assert.False(t, Matches("", nil))
	assert.False(t, Matches("", []string{".zip"}))
}

func TestMatchesDeterministic(t *testing.T) {
	allowed := []string{".zip", ".ex4"}
	for i := 0; i < 3; i++ {
		assert.True(t, Matches("ea.zip", allowed))
		assert.False(t, Matches("ea.exe", allowed))
	}
}
