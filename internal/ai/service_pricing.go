package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

// ======================================================
// Precificação de serviço
// ======================================================

type ServicePricingInput struct {
	ShopID string `json:"shop_id" binding:"required"`

	Service struct {
		Name        string  `json:"name" binding:"required"`
		DurationMin int     `json:"duration_min"`
		Price       float64 `json:"price"`
	} `json:"service"`

	History struct {
		Last4WeeksCount int     `json:"last_4_weeks_count"`
		CancelRate      float64 `json:"cancel_rate"`
	} `json:"history"`

	Demand struct {
		PeakHours []string `json:"peak_hours"`
		PeakShare float64  `json:"peak_share"`
	} `json:"demand"`

	Currency string `json:"currency"`
}

type ServicePricingData struct {
	RecommendedPriceRange struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"recommended_price_range"`
	RecommendedDurationMin int      `json:"recommended_duration_min"`
	Rationale              []string `json:"rationale"`
	TestPlan               string   `json:"test_plan"`
}

type ServicePricingResult struct {
	Cached bool               `json:"cached"`
	Data   ServicePricingData `json:"data"`
}

func pricingCacheKey(in ServicePricingInput) string {
	return fmt.Sprintf(
		"ai:pricing:%s:%s:%.2f:%d:%.2f",
		in.ShopID,
		in.Service.Name,
		in.Service.Price,
		in.History.Last4WeeksCount,
		in.Demand.PeakShare,
	)
}

// ServicePricing não tem limite semanal: o cache por assinatura do
// pedido já evita chamadas redundantes.
func (s *Service) ServicePricing(
	ctx context.Context,
	in ServicePricingInput,
) (*ServicePricingResult, error) {

	cacheKey := pricingCacheKey(in)
	if raw, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		var data ServicePricingData
		if json.Unmarshal([]byte(raw), &data) == nil {
			return &ServicePricingResult{Cached: true, Data: data}, nil
		}
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	system := "Escreva em português. Baseie-se apenas nos dados fornecidos. " +
		"Responda somente JSON. O preço recomendado deve ser uma faixa " +
		"(min/max). Rationale com no máximo 3 itens."

	prompt := fmt.Sprintf(
		"Gere uma recomendação de preço para o serviço abaixo.\n\nDADOS (JSON):\n%s",
		payload,
	)

	var data ServicePricingData
	if err := s.client.GenerateJSON(ctx, system, prompt, &data); err != nil {
		return nil, err
	}

	if blob, err := json.Marshal(data); err == nil {
		s.redis.Set(ctx, cacheKey, blob, s.ttl)
	}

	return &ServicePricingResult{Cached: false, Data: data}, nil
}
