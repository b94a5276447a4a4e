package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ======================================================
// Coach semanal
// ======================================================

type DailyRevenue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type TimeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type WeeklyCoachInput struct {
	ShopID     string `json:"shop_id" binding:"required"`
	RangeStart string `json:"range_start" binding:"required"` // "2026-08-24"
	RangeEnd   string `json:"range_end" binding:"required"`
	Currency   string `json:"currency"`

	DailyRevenue []DailyRevenue `json:"daily_revenue" binding:"required,min=1"`

	Appointments struct {
		Total     int `json:"total"`
		Canceled  int `json:"canceled"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"appointments"`

	TimeBuckets []TimeBucket `json:"time_buckets"`
}

type WeeklyCoachData struct {
	Title    string `json:"title"`
	Insights []struct {
		Label  string `json:"label"`
		Value  string `json:"value"`
		Detail string `json:"detail"`
	} `json:"insights"`
	Warnings []struct {
		Text string `json:"text"`
	} `json:"warnings"`
	Actions []struct {
		Title string `json:"title"`
		Why   string `json:"why"`
		How   string `json:"how"`
	} `json:"actions"`
	OneLineSummary string `json:"one_line_summary"`
}

type WeeklyCoachResult struct {
	Cached bool            `json:"cached"`
	Data   WeeklyCoachData `json:"data"`
}

// Service aplica a política em volta do Gemini: cache por
// (shop, intervalo) e limite de 1 análise por semana ISO por
// (usuário, shop). Bookkeeping simples e idempotente no Redis.
type Service struct {
	client *Client
	redis  *redis.Client
	ttl    time.Duration
}

func NewService(client *Client, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{
		client: client,
		redis:  rdb,
		ttl:    cacheTTL,
	}
}

// usageWeekKey usa a semana ISO real (ano, semana) do início do
// intervalo analisado.
func usageWeekKey(userID uint, shopID string, rangeStart string) string {
	t, err := time.Parse("2006-01-02", rangeStart)
	if err != nil {
		t = time.Now()
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("ai:usage:%d:%s:%d-%02d", userID, shopID, year, week)
}

func weeklyCacheKey(in WeeklyCoachInput) string {
	return fmt.Sprintf("ai:weekly:%s:%s:%s", in.ShopID, in.RangeStart, in.RangeEnd)
}

func (s *Service) WeeklyCoach(
	ctx context.Context,
	userID uint,
	in WeeklyCoachInput,
) (*WeeklyCoachResult, error) {

	// 1) cache primeiro: mesma semana já analisada não gasta chamada
	cacheKey := weeklyCacheKey(in)
	if raw, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		var data WeeklyCoachData
		if json.Unmarshal([]byte(raw), &data) == nil {
			return &WeeklyCoachResult{Cached: true, Data: data}, nil
		}
	}

	// 2) limite semanal por usuário+shop
	usageKey := usageWeekKey(userID, in.ShopID, in.RangeStart)
	exists, err := s.redis.Exists(ctx, usageKey).Result()
	if err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, httperr.ErrBusiness("weekly_limit")
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	system := "Escreva em português. Seja curto, claro e acionável. " +
		"Baseie-se apenas nos dados fornecidos, sem inventar números. " +
		"Responda somente JSON. Gere exatamente 3 ações aplicáveis."

	prompt := fmt.Sprintf(
		"Analise os dados semanais desta barbearia e produza o resumo de coaching no formato JSON pedido.\n\nDADOS (JSON):\n%s",
		payload,
	)

	var data WeeklyCoachData
	if err := s.client.GenerateJSON(ctx, system, prompt, &data); err != nil {
		return nil, err
	}

	// 3) registra uso + cache; falha aqui não derruba a resposta
	if err := s.redis.Set(ctx, usageKey, time.Now().Unix(), 14*24*time.Hour).Err(); err == nil {
		if blob, err := json.Marshal(data); err == nil {
			s.redis.Set(ctx, cacheKey, blob, s.ttl)
		}
	}

	return &WeeklyCoachResult{Cached: false, Data: data}, nil
}
