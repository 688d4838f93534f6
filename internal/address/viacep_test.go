package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BruksfildServices01/sales-manager/internal/httperr"
)

func TestViaCEPResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01001000/json/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	resolver := NewViaCEP(srv.URL, nil)

	addr, err := resolver.Resolve(context.Background(), "01001000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.UF != "SP" || addr.City != "São Paulo" {
		t.Fatalf("unexpected address: %+v", addr)
	}
	if got := addr.Line(); got != "Praça da Sé, Sé, São Paulo - SP" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestViaCEPResolveUnknownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	resolver := NewViaCEP(srv.URL, nil)

	_, err := resolver.Resolve(context.Background(), "99999999")
	if !httperr.IsBusiness(err, "invalid_cep") {
		t.Fatalf("expected invalid_cep, got %v", err)
	}
}

func TestViaCEPResolveMalformedCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	resolver := NewViaCEP(srv.URL, nil)

	_, err := resolver.Resolve(context.Background(), "abc")
	if !httperr.IsBusiness(err, "invalid_cep") {
		t.Fatalf("expected invalid_cep, got %v", err)
	}
}
