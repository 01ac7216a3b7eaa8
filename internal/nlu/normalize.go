package nlu

import "strings"

// Normalize lowercases and trims a raw command and strips the wake word,
// both in its "alexa," form and as a bare token. Never returns an error;
// empty input yields an empty string, which classifies as Unknown.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, WakeWord+",", "")
	s = strings.ReplaceAll(s, WakeWord, "")
	return strings.TrimSpace(s)
}
