package validators

import "strings"

// Dígitos verificadores de CPF/CNPJ conforme a Receita Federal.

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func IsValidCPF(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	dv1 := checkDigit(digits, []int{10, 9, 8, 7, 6, 5, 4, 3, 2})
	if dv1 != int(digits[9]-'0') {
		return false
	}

	dv2 := checkDigit(digits, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2})
	return dv2 == int(digits[10]-'0')
}

func IsValidCNPJ(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}

	dv1 := checkDigit(digits, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	if dv1 != int(digits[12]-'0') {
		return false
	}

	dv2 := checkDigit(digits, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	return dv2 == int(digits[13]-'0')
}

// IsValidCpfCnpj decide o formato pelo tamanho: 11 dígitos valida
// como CPF, 14 como CNPJ. Qualquer outro tamanho é inválido.
func IsValidCpfCnpj(value string) bool {
	digits := onlyDigits(value)
	switch len(digits) {
	case 11:
		return IsValidCPF(digits)
	case 14:
		return IsValidCNPJ(digits)
	}
	return false
}
