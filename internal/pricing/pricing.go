package pricing

import "strings"

// Percentual de ajuste de preço por UF. UFs fora da tabela não têm ajuste.
var ufAdjustments = map[string]float64{
	"AC": 0.1,
	"AL": 0.2,
	"AM": 0.05,
	"AP": 0.2,
	"BA": 0.12,
	"CE": 0.05,
	"DF": 0.5,
	"ES": 0.5,
	"GO": 0.5,
	"MA": 0.1,
	"MG": 0.09,
	"MS": 0.1,
	"MT": 0.1,
	"PA": 0.2,
	"PB": 0.25,
	"PE": 0.1,
	"PI": 0.1,
	"PR": 0.0,
	"RJ": 0.15,
	"RN": 0.1,
	"RO": 0.15,
	"RR": 0.0,
	"RS": 0.0,
	"SC": 0.95,
	"SE": 0.1,
	"SP": 0.15,
	"TO": 0.3,
}

func AdjustmentByUF(uf string) float64 {
	return ufAdjustments[strings.ToUpper(strings.TrimSpace(uf))]
}

// Item é um item de carrinho já resolvido: o preço base do plano
// e os preços dos serviços adicionais.
type Item struct {
	PlanPrice     float64
	ServicePrices []float64
}

// Total calcula o preço da venda: cada item tem plano e serviços
// ajustados pela UF do cliente, e o desconto é aplicado por último.
// O resultado não é truncado em zero.
func Total(items []Item, uf string, discount float64) float64 {
	adj := AdjustmentByUF(uf)

	total := 0.0
	for _, item := range items {
		planPrice := item.PlanPrice * (1 + adj)

		servicesPrice := 0.0
		for _, p := range item.ServicePrices {
			servicesPrice += p
		}
		servicesPrice *= 1 + adj

		total += planPrice + servicesPrice
	}

	return total - discount
}
