package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/address"
	"github.com/BruksfildServices01/sales-manager/internal/audit"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/models"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Plan{},
		&models.Service{},
		&models.Sale{},
		&models.CartItem{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// stubResolver devolve sempre o mesmo endereço, ou o erro configurado.
type stubResolver struct {
	addr *address.Address
	err  error
}

func (s *stubResolver) Resolve(ctx context.Context, cep string) (*address.Address, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.addr, nil
}

func clientRouter(db *gorm.DB, resolver address.Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewClientHandler(db, resolver, audit.NewDispatcher(audit.New(db)))

	r := gin.New()
	r.POST("/api/clientes", h.Create)
	r.GET("/api/clientes/:id", h.Get)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rr.Body.String())
	}
	return body
}

func TestCreateClientStoresResolvedAddress(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{addr: &address.Address{
		Street:       "Praça da Sé",
		Neighborhood: "Sé",
		City:         "São Paulo",
		UF:           "sp",
	}})

	rr := postJSON(t, r, "/api/clientes", gin.H{
		"name":     "Maria Souza",
		"cpf_cnpj": "52998224725",
		"email":    "Maria@Example.com",
		"phone":    "(11) 98765-4321",
		"type":     "pessoa-fisica",
		"cep":      "01001-000",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var client models.Client
	if err := db.First(&client).Error; err != nil {
		t.Fatalf("load client: %v", err)
	}

	if client.Address != "Praça da Sé, Sé, São Paulo - SP" {
		t.Errorf("unexpected address %q", client.Address)
	}
	if client.UF != "SP" {
		t.Errorf("UF deveria ser gravada em maiúsculas, got %q", client.UF)
	}
	if client.Email != "maria@example.com" {
		t.Errorf("email deveria ser normalizado, got %q", client.Email)
	}
	if client.Phone != "+5511987654321" {
		t.Errorf("unexpected phone %q", client.Phone)
	}
}

func TestCreateClientInvalidCpfCnpj(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{addr: &address.Address{UF: "SP"}})

	rr := postJSON(t, r, "/api/clientes", gin.H{
		"name":     "Maria Souza",
		"cpf_cnpj": "11111111111",
		"email":    "maria@example.com",
		"type":     "pessoa-fisica",
		"cep":      "01001-000",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["error_code"] != "invalid_cpf_cnpj" {
		t.Fatalf("unexpected error_code %v", body["error_code"])
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Fatalf("nothing should be persisted, found %d clients", count)
	}
}

func TestCreateClientDocumentTypeMismatch(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{addr: &address.Address{UF: "SP"}})

	// CNPJ válido com tipo pessoa física
	rr := postJSON(t, r, "/api/clientes", gin.H{
		"name":     "Empresa XYZ",
		"cpf_cnpj": "11444777000161",
		"email":    "contato@xyz.example.com",
		"type":     "pessoa-fisica",
		"cep":      "01001-000",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["error_code"] != "invalid_cpf_cnpj" {
		t.Fatalf("unexpected error_code %v", body["error_code"])
	}
}

func TestCreateClientInvalidCEPAborts(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{err: httperr.ErrBusiness("invalid_cep")})

	rr := postJSON(t, r, "/api/clientes", gin.H{
		"name":     "Maria Souza",
		"cpf_cnpj": "52998224725",
		"email":    "maria@example.com",
		"type":     "pessoa-fisica",
		"cep":      "00000000",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["error_code"] != "invalid_cep" {
		t.Fatalf("unexpected error_code %v", body["error_code"])
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Fatalf("nothing should be persisted, found %d clients", count)
	}
}

func TestCreateClientDuplicateCpfCnpj(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{addr: &address.Address{UF: "SP"}})

	payload := gin.H{
		"name":     "Maria Souza",
		"cpf_cnpj": "52998224725",
		"email":    "maria@example.com",
		"type":     "pessoa-fisica",
		"cep":      "01001-000",
	}

	if rr := postJSON(t, r, "/api/clientes", payload); rr.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", rr.Code)
	}

	payload["email"] = "outra@example.com"
	rr := postJSON(t, r, "/api/clientes", payload)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["error_code"] != "cpf_cnpj_already_exists" {
		t.Fatalf("unexpected error_code %v", body["error_code"])
	}
}

func TestGetClientNotFound(t *testing.T) {
	db := setupHandlerDB(t)
	r := clientRouter(db, &stubResolver{addr: &address.Address{UF: "SP"}})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clientes/999", nil)
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
