package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCorpus(t *testing.T) {
	t.Run("Concatenates Text Fields Case Folded", func(t *testing.T) {
		p := Product{
			Name:        "Vintage Camera",
			Description: "Nikon F3",
			Category:    "Photo",
		}
		corpus := BuildCorpus(p)
		assert.Contains(t, corpus, "vintage camera")
		assert.Contains(t, corpus, "nikon f3")
		assert.Contains(t, corpus, "photo")
	})

	t.Run("Includes Metadata Values Deterministically", func(t *testing.T) {
		p := Product{
			Name: "item",
			Metadata: map[string]string{
				"brand":     "Seiko",
				"condition": "USED",
				"origin":    "Japan",
			},
		}
		first := BuildCorpus(p)
		assert.Contains(t, first, "seiko")
		assert.Contains(t, first, "used")

		// Map iteration order must not leak into the corpus.
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, BuildCorpus(p))
		}
	})
}

func TestMatchesAny(t *testing.T) {
	t.Run("Substring Match Without Word Boundaries", func(t *testing.T) {
		// Permissive by design: compound and inflected terms still match.
		assert.True(t, MatchesAny("this is a secondhand-camera listing", []string{"secondhand"}))
		assert.True(t, MatchesAny("ヴィンテージカメラの出品", []string{"ヴィンテージ"}))
	})

	t.Run("Case Folds Keywords", func(t *testing.T) {
		assert.True(t, MatchesAny("antique clock", []string{"ANTIQUE"}))
	})

	t.Run("No Match", func(t *testing.T) {
		assert.False(t, MatchesAny("new bluetooth speaker", antiqueKeywords))
	})

	t.Run("Empty Keyword Never Matches", func(t *testing.T) {
		assert.False(t, MatchesAny("anything", []string{""}))
	})
}

func TestMatchingKeywords(t *testing.T) {
	matched := MatchingKeywords("中古の拳銃 レプリカ", []string{"拳銃", "刀剣", "レプリカ"})
	assert.Equal(t, []string{"拳銃", "レプリカ"}, matched)
}
