package rate

// currencyNames maps the usual exchange currencies to their display names.
// Codes outside this map are still convertible, they just carry no name in
// the short listing.
var currencyNames = map[string]string{
	"EUR": "Euro",
	"USD": "US Dollar",
	"JPY": "Japanese Yen",
	"BGN": "Bulgarian Lev",
	"CZK": "Czech Koruna",
	"DKK": "Danish Krone",
	"GBP": "Pound Sterling",
	"HUF": "Hungarian Forint",
	"PLN": "Polish Zloty",
	"RON": "Romanian Leu",
	"SEK": "Swedish Krona",
	"CHF": "Swiss Franc",
	"ISK": "Islandic Krona",
	"NOK": "Norwegian Krone",
	"TRY": "Turkish Lira",
	"AUD": "Australian Dollar",
	"BRL": "Brazilian Real",
	"CAD": "Canadian Dollar",
	"CNY": "Chinese Yuan Renmimbi",
	"HKD": "Hong Kong Dollar",
	"IDR": "Indonesian Rupiah",
	"ILS": "Israeli Shekel",
	"INR": "Indian Rupee",
	"KRW": "South Korean Won",
	"MXN": "Mexican Peso",
	"MYR": "Malaysian Ringgit",
	"NZD": "New Zealand Dollar",
	"PHP": "Philippine Peso",
	"SGD": "Singapore Dollar",
	"THB": "Thai Baht",
	"ZAR": "South African Rand",
}

// Name returns the display name of a usual currency code.
func Name(code string) (string, bool) {
	name, ok := currencyNames[code]
	return name, ok
}
