package validators

// NormalizeBRPhone normaliza um telefone brasileiro para E.164 (+55...).
// Aceita o número nacional com DDD (10 ou 11 dígitos), com ou sem o
// código do país na frente.
func NormalizeBRPhone(value string) (string, bool) {
	digits := onlyDigits(value)

	if len(digits) == 12 || len(digits) == 13 {
		if digits[:2] != "55" {
			return "", false
		}
		digits = digits[2:]
	}

	if len(digits) != 10 && len(digits) != 11 {
		return "", false
	}

	// DDD não começa com zero
	if digits[0] == '0' {
		return "", false
	}

	// celular de 9 dígitos começa com 9
	if len(digits) == 11 && digits[2] != '9' {
		return "", false
	}

	return "+55" + digits, true
}
