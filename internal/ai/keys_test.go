package ai

import "testing"

func TestUsageWeekKey(t *testing.T) {
	// mesma semana ISO → mesma chave, dias diferentes
	monday := usageWeekKey(7, "shop-1", "2026-08-24")
	friday := usageWeekKey(7, "shop-1", "2026-08-28")
	if monday != friday {
		t.Errorf("same ISO week produced different keys: %q vs %q", monday, friday)
	}

	if monday != "ai:usage:7:shop-1:2026-35" {
		t.Errorf("key = %q, want ai:usage:7:shop-1:2026-35", monday)
	}

	// semana seguinte muda a chave
	next := usageWeekKey(7, "shop-1", "2026-08-31")
	if next == monday {
		t.Error("next ISO week reused the same key")
	}

	// usuários e lojas não compartilham limite
	if usageWeekKey(8, "shop-1", "2026-08-24") == monday {
		t.Error("different users share the usage key")
	}
	if usageWeekKey(7, "shop-2", "2026-08-24") == monday {
		t.Error("different shops share the usage key")
	}

	// virada de ano ISO: 2026-01-01 pertence à semana 1 de 2026
	if got := usageWeekKey(1, "s", "2026-01-01"); got != "ai:usage:1:s:2026-01" {
		t.Errorf("ISO year boundary: key = %q", got)
	}
}

func TestWeeklyCacheKey(t *testing.T) {
	a := weeklyCacheKey(WeeklyCoachInput{ShopID: "s1", RangeStart: "2026-08-24", RangeEnd: "2026-08-30"})
	b := weeklyCacheKey(WeeklyCoachInput{ShopID: "s1", RangeStart: "2026-08-24", RangeEnd: "2026-08-30"})
	if a != b {
		t.Error("identical inputs must share the cache key")
	}

	c := weeklyCacheKey(WeeklyCoachInput{ShopID: "s1", RangeStart: "2026-08-31", RangeEnd: "2026-09-06"})
	if a == c {
		t.Error("different ranges must not share the cache key")
	}
}

func TestPricingCacheKey(t *testing.T) {
	in := ServicePricingInput{ShopID: "s1"}
	in.Service.Name = "Corte"
	in.Service.Price = 50

	same := ServicePricingInput{ShopID: "s1"}
	same.Service.Name = "Corte"
	same.Service.Price = 50

	if pricingCacheKey(in) != pricingCacheKey(same) {
		t.Error("identical pricing inputs must share the cache key")
	}

	repriced := same
	repriced.Service.Price = 60
	if pricingCacheKey(in) == pricingCacheKey(repriced) {
		t.Error("price change must invalidate the cache key")
	}
}
