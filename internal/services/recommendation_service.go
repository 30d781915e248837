package services

import (
	"context"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// recommendedVaults is the static suggestion list shown on the dashboard
var recommendedVaults = []models.RecommendedVault{
	{
		ID:              "1",
		Name:            "Global Sovereign Yield Alpha",
		Description:     "Diversified exposure to short-term government bonds across G7 nations, optimized for yield and currency stability.",
		APR:             5.42,
		MatchPercentage: 98,
		IsNew:           true,
		Assets: []models.RecommendedAsset{
			{Name: "BL", Type: "bond", Provider: "BlackRock", Country: "US", Rating: "AAA", Description: "US Treasury"},
			{Name: "VA", Type: "bond", Provider: "Vanguard", Country: "UK", Rating: "AA", Description: "UK Gilts"},
			{Name: "IN", Type: "bond", Provider: "Invesco", Country: "DE", Rating: "AAA", Description: "German Bunds"},
		},
		RiskTier: 1,
	},
	{
		ID:              "2",
		Name:            "Real Estate Income Plus",
		Description:     "High-yield REIT strategy focusing on commercial and industrial properties in emerging tech hubs.",
		APR:             8.15,
		MatchPercentage: 94,
		Assets: []models.RecommendedAsset{
			{Name: "VA", Type: "reit", Provider: "Vanguard", Country: "US", Rating: "A", Description: "Commercial REIT"},
			{Name: "BL", Type: "reit", Provider: "BlackRock", Country: "US", Rating: "A+", Description: "Industrial REIT"},
			{Name: "ST", Type: "reit", Provider: "State Street", Country: "US", Rating: "A-", Description: "Office REIT"},
		},
		RiskTier: 2,
	},
	{
		ID:              "3",
		Name:            "Tech Innovation Debt Fund",
		Description:     "Senior secured lending to late-stage venture-backed technology companies with strong recurring revenue.",
		APR:             11.2,
		MatchPercentage: 88,
		Assets: []models.RecommendedAsset{
			{Name: "BL", Type: "fund", Provider: "BlackRock", Country: "US", Rating: "BBB", Description: "Tech Debt"},
		},
		RiskTier: 3,
	},
	{
		ID:              "4",
		Name:            "Emerging Markets Green Bond",
		Description:     "ESG-focused sovereign and corporate debt from high-growth developing economies.",
		APR:             6.85,
		MatchPercentage: 82,
		Assets: []models.RecommendedAsset{
			{Name: "EM", Type: "bond", Provider: "Emerging Markets", Country: "BR", Rating: "BBB+", Description: "Brazilian Bonds"},
		},
		RiskTier: 3,
	},
}

// RecommendationService serves vault suggestions. The list is fixed mock data.
type RecommendationService struct{}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

// Recommend returns the suggestions, keeping only those at or below maxRiskTier when it is non-zero
func (s *RecommendationService) Recommend(ctx context.Context, maxRiskTier uint8) []models.RecommendedVault {
	result := make([]models.RecommendedVault, 0, len(recommendedVaults))
	for _, v := range recommendedVaults {
		if maxRiskTier != 0 && v.RiskTier > maxRiskTier {
			continue
		}
		result = append(result, v)
	}
	return result
}
