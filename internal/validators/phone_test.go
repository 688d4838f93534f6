package validators

import "testing"

func TestNormalizeBRPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"11987654321", "+5511987654321", true},
		{"1133334444", "+551133334444", true},
		{"(11) 98765-4321", "+5511987654321", true},
		{"+55 11 98765-4321", "+5511987654321", true},
		{"5511987654321", "+5511987654321", true},

		{"11887654321", "", false}, // 11 dígitos sem o 9
		{"0187654321", "", false},  // DDD começando com zero
		{"123", "", false},
		{"", "", false},
		{"4911987654321", "", false}, // código de país errado
	}

	for _, tc := range cases {
		got, ok := NormalizeBRPhone(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NormalizeBRPhone(%q) = (%q, %v), want (%q, %v)",
				tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
