package validators

import "strings"

// DefaultCountryCode é usado quando o número não vem em E.164.
const DefaultCountryCode = "+27"

// NormalizePhone prefixa o código do país em números locais ("082..." → "+2782...").
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)

	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return DefaultCountryCode + strings.TrimLeft(phone, "0")
}

// SplitName separa nome e sobrenome no primeiro espaço.
func SplitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	name, surname, _ := strings.Cut(full, " ")
	return name, strings.TrimSpace(surname)
}
