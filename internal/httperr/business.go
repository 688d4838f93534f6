package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// CÓDIGO -> STATUS / MENSAGEM
// ======================================================

var businessStatus = map[string]int{
	"invalid_request":     http.StatusBadRequest,
	"empty_cart":          http.StatusBadRequest,
	"cart_too_large":      http.StatusBadRequest,
	"sale_limit_reached":  http.StatusBadRequest,
	"invalid_cpf_cnpj":    http.StatusBadRequest,
	"invalid_phone":       http.StatusBadRequest,
	"invalid_birth_date":  http.StatusBadRequest,
	"invalid_cep":         http.StatusBadRequest,
	"invalid_plan_name":   http.StatusBadRequest,
	"invalid_price":       http.StatusBadRequest,
	"invalid_date":        http.StatusBadRequest,
	"invalid_email":       http.StatusBadRequest,
	"client_not_found":    http.StatusNotFound,
	"plan_not_found":      http.StatusNotFound,
	"service_not_found":   http.StatusNotFound,
	"sale_not_found":      http.StatusNotFound,
	"invalid_credentials": http.StatusUnauthorized,
}

var businessMessage = map[string]string{
	"empty_cart":         "O carrinho de compras não pode estar vazio.",
	"cart_too_large":     "Quantidade máxima de serviços no carrinho excedida.",
	"sale_limit_reached": "O cliente atingiu o limite de vendas ativas.",
	"invalid_cpf_cnpj":   "CPF/CNPJ inválido.",
	"invalid_phone":      "Telefone inválido.",
	"invalid_birth_date": "Data de nascimento deve estar no passado.",
	"invalid_cep":        "CEP inválido.",
	"invalid_plan_name":  "Nome de plano inválido.",
	"client_not_found":   "Cliente não encontrado.",
	"plan_not_found":     "Plano não encontrado.",
	"service_not_found":  "Serviço não encontrado.",
	"sale_not_found":     "Venda não encontrada.",
}

// Respond é a fronteira única de serialização de erros: erros de negócio
// saem com o status mapeado, qualquer outro erro vira 500 genérico.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, ok := businessStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		msg := businessMessage[be.Code]
		if msg == "" {
			msg = be.Code
		}
		Write(c, status, be.Code, msg)
		return
	}

	Internal(c, "internal_error", "Algo deu errado.")
}
