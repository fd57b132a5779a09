package domain

// SKU identifies a stock-keeping unit: one to three uppercase ASCII letters,
// a hyphen, and one to three decimal digits. Identity is case-sensitive.
type SKU string

func (s SKU) String() string { return string(s) }

// ParseSKU validates token against the SKU grammar as a full match; a valid
// prefix followed by anything else is rejected.
func ParseSKU(token string) (SKU, error) {
	i := 0
	for i < len(token) && token[i] >= 'A' && token[i] <= 'Z' {
		i++
	}
	letters := i
	if letters < 1 || letters > 3 || i == len(token) || token[i] != '-' {
		return "", InvalidSKUError{Token: token}
	}
	i++
	start := i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	digits := i - start
	if digits < 1 || digits > 3 || i != len(token) {
		return "", InvalidSKUError{Token: token}
	}
	return SKU(token), nil
}
