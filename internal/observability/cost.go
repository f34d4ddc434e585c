package observability

import (
	"strconv"

	"github.com/Conceptual-Machines/retort-api/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	// Gemini 2.5 Flash pricing (also billed through OpenRouter)
	geminiFlashInputPrice  = 0.0003
	geminiFlashOutputPrice = 0.0025

	// Gemini 2.5 Flash-Lite pricing
	geminiFlashLiteInputPrice  = 0.0001
	geminiFlashLiteOutputPrice = 0.0004
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

var geminiFlashPricing = ModelPricing{
	InputPricePer1K:  geminiFlashInputPrice,
	OutputPricePer1K: geminiFlashOutputPrice,
}

var geminiFlashLitePricing = ModelPricing{
	InputPricePer1K:  geminiFlashLiteInputPrice,
	OutputPricePer1K: geminiFlashLiteOutputPrice,
}

// PricingTable contains pricing for the models we call
var PricingTable = map[string]ModelPricing{
	llm.DefaultOpenRouterModel:     geminiFlashPricing,
	"google/gemini-2.5-flash":      geminiFlashPricing,
	llm.DefaultGeminiModel:         geminiFlashPricing,
	"gemini-2.5-flash-lite":        geminiFlashLitePricing,
	"google/gemini-2.5-flash-lite": geminiFlashLitePricing,
}

// CalculateCost calculates the cost in USD for a completion
func CalculateCost(model string, usage llm.Usage) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		// Default to Gemini Flash pricing if model not found
		pricing = geminiFlashPricing
	}

	inputCost := (float64(usage.InputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
