package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	svc := NewRecommendationService()

	all := svc.Recommend(context.Background(), 0)
	assert.Len(t, all, 4)
	assert.True(t, all[0].IsNew)

	low := svc.Recommend(context.Background(), 2)
	assert.Len(t, low, 2)
	for _, v := range low {
		assert.LessOrEqual(t, v.RiskTier, uint8(2))
	}

	assert.Len(t, svc.Recommend(context.Background(), 1), 1)
}
