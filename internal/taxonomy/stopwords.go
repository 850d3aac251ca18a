package taxonomy

import "strings"

// stopWords are excluded from lexical-overlap scoring so that shared function
// words never count as evidence of relevance.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "had": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"our": {}, "that": {}, "the": {}, "their": {}, "this": {}, "to": {},
	"was": {}, "were": {}, "with": {},
}

// IsStopWord reports whether the token is a stop word (case-insensitive)
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

// Keywords lowercases the text, splits it on whitespace, strips surrounding
// punctuation, and returns the set of non-stop-word tokens.
func Keywords(text string) map[string]struct{} {
	tokens := strings.Fields(strings.ToLower(text))
	keywords := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		token = strings.Trim(token, ".,;:!?()[]\"'")
		if token == "" || IsStopWord(token) {
			continue
		}
		keywords[token] = struct{}{}
	}
	return keywords
}
