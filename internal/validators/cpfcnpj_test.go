package validators

import "testing"

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"52998224725",
		"529.982.247-25",
	}
	for _, v := range valid {
		if !IsValidCPF(v) {
			t.Errorf("expected %q to be a valid CPF", v)
		}
	}

	invalid := []string{
		"52998224726", // dígito verificador errado
		"11111111111", // todos iguais
		"5299822472",  // curto
		"",
	}
	for _, v := range invalid {
		if IsValidCPF(v) {
			t.Errorf("expected %q to be an invalid CPF", v)
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"11444777000161",
		"11.444.777/0001-61",
	}
	for _, v := range valid {
		if !IsValidCNPJ(v) {
			t.Errorf("expected %q to be a valid CNPJ", v)
		}
	}

	invalid := []string{
		"11444777000162", // dígito verificador errado
		"00000000000000", // todos iguais
		"1144477700016",  // curto
	}
	for _, v := range invalid {
		if IsValidCNPJ(v) {
			t.Errorf("expected %q to be an invalid CNPJ", v)
		}
	}
}

func TestIsValidCpfCnpjByLength(t *testing.T) {
	if !IsValidCpfCnpj("529.982.247-25") {
		t.Error("11 dígitos deve validar como CPF")
	}
	if !IsValidCpfCnpj("11.444.777/0001-61") {
		t.Error("14 dígitos deve validar como CNPJ")
	}
	if IsValidCpfCnpj("123456") {
		t.Error("tamanho fora de 11/14 deve ser inválido")
	}
}
