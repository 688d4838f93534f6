package address

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/sales-manager/internal/httperr"
)

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	UF           string `json:"uf"`
}

func (a Address) Line() string {
	return fmt.Sprintf("%s, %s, %s - %s", a.Street, a.Neighborhood, a.City, a.UF)
}

type Resolver interface {
	Resolve(ctx context.Context, cep string) (*Address, error)
}

// ViaCEP resolve endereços pelo CEP usando a API pública viacep.com.br,
// com cache opcional em Redis (respostas de CEP são estáveis).
type ViaCEP struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
}

const cacheTTL = 24 * time.Hour

func NewViaCEP(baseURL string, cache *redis.Client) *ViaCEP {
	return &ViaCEP{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		cache:   cache,
	}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (v *ViaCEP) Resolve(ctx context.Context, cep string) (*Address, error) {
	key := "viacep:" + cep

	if v.cache != nil {
		if cached, err := v.cache.Get(ctx, key).Result(); err == nil {
			var addr Address
			if err := json.Unmarshal([]byte(cached), &addr); err == nil {
				return &addr, nil
			}
		}
	}

	url := fmt.Sprintf("%s/ws/%s/json/", v.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// ViaCEP devolve 400 para CEP malformado e {"erro":true} para CEP inexistente
	if resp.StatusCode != http.StatusOK {
		return nil, httperr.ErrBusiness("invalid_cep")
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Erro {
		return nil, httperr.ErrBusiness("invalid_cep")
	}

	addr := &Address{
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		UF:           body.UF,
	}

	if v.cache != nil {
		if b, err := json.Marshal(addr); err == nil {
			v.cache.Set(ctx, key, b, cacheTTL)
		}
	}

	return addr, nil
}

var _ Resolver = (*ViaCEP)(nil)
