package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdjustmentByUF(t *testing.T) {
	if got := AdjustmentByUF("SP"); !almostEqual(got, 0.15) {
		t.Fatalf("SP: expected 0.15, got %v", got)
	}
	if got := AdjustmentByUF("sp"); !almostEqual(got, 0.15) {
		t.Fatalf("sp (minúsculo): expected 0.15, got %v", got)
	}
	if got := AdjustmentByUF(" sc "); !almostEqual(got, 0.95) {
		t.Fatalf("SC com espaços: expected 0.95, got %v", got)
	}
	if got := AdjustmentByUF("XX"); !almostEqual(got, 0) {
		t.Fatalf("UF desconhecida: expected 0, got %v", got)
	}
	if got := AdjustmentByUF(""); !almostEqual(got, 0) {
		t.Fatalf("UF vazia: expected 0, got %v", got)
	}
}

func TestTotalSingleItemWithAdjustment(t *testing.T) {
	items := []Item{
		{PlanPrice: 100, ServicePrices: []float64{30, 20}},
	}

	// SP: (100*1.15) + (50*1.15) - 5 = 167.5
	got := Total(items, "SP", 5)
	if !almostEqual(got, 167.5) {
		t.Fatalf("expected 167.5, got %v", got)
	}
}

func TestTotalUnknownUFNoAdjustment(t *testing.T) {
	items := []Item{
		{PlanPrice: 100, ServicePrices: []float64{50}},
	}

	got := Total(items, "ZZ", 0)
	if !almostEqual(got, 150) {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestTotalMultipleItems(t *testing.T) {
	items := []Item{
		{PlanPrice: 100, ServicePrices: []float64{10}},
		{PlanPrice: 200, ServicePrices: nil},
	}

	// PR tem ajuste 0: 110 + 200 - 10 = 300
	got := Total(items, "PR", 10)
	if !almostEqual(got, 300) {
		t.Fatalf("expected 300, got %v", got)
	}
}

func TestTotalAllowsNegativeResult(t *testing.T) {
	items := []Item{
		{PlanPrice: 10},
	}

	// desconto maior que o carrinho não é truncado em zero
	got := Total(items, "PR", 100)
	if !almostEqual(got, -90) {
		t.Fatalf("expected -90, got %v", got)
	}
}

func TestTotalEmptyCartIsMinusDiscount(t *testing.T) {
	got := Total(nil, "SP", 7)
	if !almostEqual(got, -7) {
		t.Fatalf("expected -7, got %v", got)
	}
}
