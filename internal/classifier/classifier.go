package classifier

import "strings"

// DefaultExtensions is the built-in allow-list applied when the user does not
// pass --types: MT4/MT5 experts, archives, documents, images, videos and
// source code.
var DefaultExtensions = []string{
	".ex4", ".ex5", ".mq4", ".mq5",
	".zip", ".rar", ".7z",
	".pdf", ".doc", ".docx", ".txt",
	".jpg", ".jpeg", ".png", ".gif",
	".mp4", ".avi", ".mkv",
	".py", ".js", ".html",
}

// Matches reports whether filename ends with one of the allowed extensions,
// case-insensitively. An empty filename never matches. An empty allow-list
// means DefaultExtensions.
func Matches(filename string, allowed []string) bool {
	if filename == "" {
		return false
	}
	if len(allowed) == 0 {
		allowed = DefaultExtensions
	}

	lower := strings.ToLower(filename)
	for _, ext := range allowed {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
