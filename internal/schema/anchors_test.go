package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "INNOVATION SCORE: <0-100>/100", ScoreLine(LabelInnovation))
	assert.Equal(t, "OVERALL SCORE: <0-100>/100", ScoreLine(LabelOverall))
}

func TestLabelOrder(t *testing.T) {
	assert.Equal(t, []string{LabelInnovation, LabelNovelty, LabelOverall}, ScoreLabels())
	assert.Equal(t, []string{SectionStrengths, SectionWeaknesses, SectionRecommendations}, SectionLabels())
}
