package domain

// MaxAmount is the inclusive ceiling for amounts: stock levels set or added,
// and per-pair order quantities.
const MaxAmount = 999

// ParseAmount validates token as an unsigned decimal integer in [0, MaxAmount].
// Signs, decimal points, and any non-digit characters are rejected; leading
// zeros are accepted as long as the value stays in range.
func ParseAmount(token string) (int, error) {
	if len(token) == 0 {
		return 0, InvalidAmountError{Token: token}
	}
	value := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return 0, InvalidAmountError{Token: token}
		}
		value = value*10 + int(c-'0')
		if value > MaxAmount {
			return 0, InvalidAmountError{Token: token}
		}
	}
	return value, nil
}
