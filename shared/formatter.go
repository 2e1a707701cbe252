package shared

import (
	"fmt"
	"github.com/spaolacci/murmur3"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxTitleLen     = 32
	MaxBodyLen      = 128
	MaxTargetUrlLen = 1024
)

func GetHostName(rawUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(rawUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse URL '%s': %v", rawUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

// TruncateWithEllipsis shortens text to at most maxLen runes, ellipsis
// included, preferring to cut at the last space before the limit. Cuts only
// on rune boundaries.
func TruncateWithEllipsis(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	cutIx := len(text)
	lastSpaceIx := -1
	runeCount := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		// One rune stays reserved for the ellipsis
		if runeCount == maxLen-1 {
			cutIx = i
			break
		}
		runeCount++
	}
	if lastSpaceIx > 0 && lastSpaceIx <= cutIx {
		cutIx = lastSpaceIx
	}
	return text[:cutIx] + "…"
}

// DedupSignature derives the identity under which a delivery attempt is
// recorded: event type, title, body and target URL, each stripped down to its
// alphanumerics, joined by underscores. Two conversions of the same source
// event always produce the same signature.
func DedupSignature(evType, title, body, targetUrl string) string {
	parts := []string{evType, title, body, targetUrl}
	for i, p := range parts {
		parts[i] = stripNonAlnum(p)
	}
	return strings.Join(parts, "_")
}

// SigHash is the indexed lookup key for a signature in the delivery log.
// Collisions are resolved by comparing the full signature string.
func SigHash(signature string) int64 {
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(signature))
	return int64(hasher.Sum32())
}

func stripNonAlnum(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
