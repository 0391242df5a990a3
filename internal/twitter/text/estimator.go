package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultShortURLLength is the length the API charges for any link once it
// has been wrapped by the URL shortener.
const DefaultShortURLLength = 23

const tailPunctuation = ":/%#[]-_.,~?!*'();&=+$"

// Match is a substring of a status recognized as a URL.
type Match struct {
	Text   string
	Length int
}

// EstimateLength returns the number of characters the API will count for
// status, every URL being charged shortURLLength regardless of its real size.
func EstimateLength(status string, shortURLLength int) int {
	length := utf8.RuneCountInString(status)
	for _, match := range FindURLs(status) {
		length += shortURLLength - match.Length
	}
	return length
}

func EstimateDefaultLength(status string) int {
	return EstimateLength(status, DefaultShortURLLength)
}

// IsURL reports whether text contains at least one URL.
func IsURL(text string) bool {
	return len(FindURLs(text)) > 0
}

// FindURLs scans text from left to right and returns every non overlapping
// URL it contains. A URL is an optional http(s) scheme, a host made of at
// least two dot separated labels where a label after the first one is a
// known top-level label or a numeric octet, and a greedy tail of path,
// query and fragment characters.
func FindURLs(text string) []Match {
	runes := []rune(text)
	var matches []Match
	for start := 0; start < len(runes); {
		if !canStartURL(runes, start) {
			start++
			continue
		}
		end, ok := matchURL(runes, start)
		if !ok {
			start++
			continue
		}
		matches = append(matches, Match{
			Text:   string(runes[start:end]),
			Length: end - start,
		})
		start = end
	}
	return matches
}

// canStartURL rejects positions in the middle of a word or a host so that
// "abc.example.com" is never matched from "bc" or "example". A dot that does
// not follow a label, as in "...example.com", does not continue a host.
func canStartURL(runes []rune, pos int) bool {
	if !isLabelRune(runes[pos]) {
		return false
	}
	if pos == 0 {
		return true
	}
	previous := runes[pos-1]
	if isLabelRune(previous) {
		return false
	}
	return previous != '.' || pos < 2 || !isLabelRune(runes[pos-2])
}

func matchURL(runes []rune, start int) (int, bool) {
	pos := skipScheme(runes, start)

	labels := 0
	hasTopLevel := false
	for {
		labelStart := pos
		for pos < len(runes) && isLabelRune(runes[pos]) {
			pos++
		}
		if pos == labelStart {
			break
		}
		labels++
		if labels > 1 {
			label := string(runes[labelStart:pos])
			if isTopLevelLabel(label) {
				hasTopLevel = true
			} else if prefix, ok := topLevelPrefix(label); ok {
				// "example.com-" ends the host after "com", the tail takes
				// the rest.
				hasTopLevel = true
				pos = labelStart + utf8.RuneCountInString(prefix)
				break
			}
		}
		if pos+1 < len(runes) && runes[pos] == '.' && isLabelRune(runes[pos+1]) {
			pos++
			continue
		}
		break
	}
	if !hasTopLevel {
		return 0, false
	}

	for pos < len(runes) && isTailRune(runes[pos]) {
		pos++
	}
	return pos, true
}

func skipScheme(runes []rune, pos int) int {
	for _, scheme := range []string{"https://", "http://"} {
		end := pos + utf8.RuneCountInString(scheme)
		if end <= len(runes) && strings.EqualFold(string(runes[pos:end]), scheme) {
			return end
		}
	}
	return pos
}

// topLevelPrefix returns the part of label before its first '-' or '_'
// when that part is a top-level label.
func topLevelPrefix(label string) (string, bool) {
	cut := strings.IndexAny(label, "-_")
	if cut <= 0 {
		return "", false
	}
	prefix := label[:cut]
	return prefix, isTopLevelLabel(prefix)
}

func isTopLevelLabel(label string) bool {
	return topLevelLabels.has(label) || isOctet(label)
}

// isOctet accepts the 0-255 numeric labels of IPv4 like hosts.
func isOctet(label string) bool {
	if len(label) == 0 || len(label) > 3 {
		return false
	}
	value := 0
	for _, r := range label {
		if r < '0' || r > '9' {
			return false
		}
		value = value*10 + int(r-'0')
	}
	return value <= 255
}

func isLabelRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || r == '-'
}

func isTailRune(r rune) bool {
	return isLabelRune(r) || strings.ContainsRune(tailPunctuation, r)
}
