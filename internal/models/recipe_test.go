package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionStatusTerminal(t *testing.T) {
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestRecipeTableName(t *testing.T) {
	assert.Equal(t, "recipes", Recipe{}.TableName())
}
