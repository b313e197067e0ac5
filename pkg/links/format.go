package links

import "strconv"

// FormatPriceRWF renders a minor-unit-free RWF amount with thousands
// separators, e.g. 1250000 -> "1,250,000 RWF".
func FormatPriceRWF(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	if negative {
		return "-" + string(grouped) + " RWF"
	}
	return string(grouped) + " RWF"
}
