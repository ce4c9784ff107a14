package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGlossary(t *testing.T) {
	glossary := DefaultGlossary()

	assert.Contains(t, glossary.Dimensions, "Format")
	assert.Contains(t, glossary.Definitions, "Creative Messaging")
	assert.Contains(t, glossary.Definitions["Creative Messaging"], "resonate most effectively")
	for _, term := range []string{"ROAS", "ROI", "CPA", "CTR", "CVR"} {
		assert.NotEmpty(t, glossary.Definitions[term], term)
	}
}
