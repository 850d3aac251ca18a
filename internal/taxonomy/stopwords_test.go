package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_StripsStopWordsAndPunctuation(t *testing.T) {
	keywords := Keywords("Improved the performance of the API, reducing latency.")

	assert.Contains(t, keywords, "improved")
	assert.Contains(t, keywords, "performance")
	assert.Contains(t, keywords, "api")
	assert.Contains(t, keywords, "latency")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "of")
}

func TestKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, Keywords(""))
	assert.Empty(t, Keywords("the of and"))
}

func TestIsStopWord_CaseInsensitive(t *testing.T) {
	assert.True(t, IsStopWord("The"))
	assert.True(t, IsStopWord("WITH"))
	assert.False(t, IsStopWord("performance"))
}
