package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

const shoppingInsightsSystemPrompt = `You are a merchandising analyst for a furniture retailer.
Analyze cart and wishlist activity and provide insights on:
- Products frequently carted but not purchased
- Wishlist demand signals worth promoting
- Pricing and bundle opportunities
Keep responses to 3-4 paragraphs of executive-level language.`

// InsightsReport wraps a generated report; AIInsights is empty when the AI
// service is not configured and only the raw aggregates are returned.
type InsightsReport struct {
	Status      string       `json:"status"`
	Data        InsightsData `json:"data"`
	GeneratedAt time.Time    `json:"generated_at"`
	AIEnabled   bool         `json:"ai_enabled"`
}

type InsightsData struct {
	Cart       models.CartSnapshot    `json:"cart"`
	Wishlist   []models.WishlistEntry `json:"wishlist"`
	AIInsights string                 `json:"ai_insights,omitempty"`
	Summary    string                 `json:"summary"`
	Error      string                 `json:"error,omitempty"`
}

// GenerateShoppingInsights produces an admin-console report over the current
// cart and wishlist aggregates.
func GenerateShoppingInsights(ctx context.Context, cart models.CartSnapshot, wishlist []models.WishlistEntry) *InsightsReport {
	report := &InsightsReport{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: InsightsData{
			Cart:     cart,
			Wishlist: wishlist,
			Summary:  "Shopping activity retrieved successfully",
		},
	}

	if !IsEnabled() {
		report.Data.Summary = "Raw shopping activity (AI insights unavailable)"
		return report
	}

	userPrompt := formatShoppingDataPrompt(cart, wishlist)
	aiInsights, err := generateCompletion(ctx, shoppingInsightsSystemPrompt, userPrompt)
	if err != nil {
		report.Data.Error = "AI analysis failed: " + err.Error()
		return report
	}

	report.Data.AIInsights = aiInsights
	report.Data.Summary = "AI-generated merchandising insights"
	return report
}

func formatShoppingDataPrompt(cart models.CartSnapshot, wishlist []models.WishlistEntry) string {
	cartJSON, _ := json.MarshalIndent(cart, "", "  ")
	wishlistJSON, _ := json.MarshalIndent(wishlist, "", "  ")
	return fmt.Sprintf(`Analyze the following shopping activity and provide merchandising insights:

Cart:
%s

Wishlist:
%s

Please provide:
1. Demand patterns across cart and wishlist
2. Promotion and bundle opportunities
3. Actionable next steps for the merchandising team`, string(cartJSON), string(wishlistJSON))
}
