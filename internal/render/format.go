package render

import "fmt"

// IDLabel renders an identifier padded to at least three digits: #006, #150, #1024
func IDLabel(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Tenths renders a subunit value in its natural unit with one decimal: 70 -> "7.0"
func Tenths(value int) string {
	sign, magnitude := "", uint64(value)
	if value < 0 {
		sign, magnitude = "-", -magnitude
	}
	return fmt.Sprintf("%s%d.%d", sign, magnitude/10, magnitude%10)
}
