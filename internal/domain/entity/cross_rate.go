package entity

// CrossRate is a derived exchange rate between two currencies, computed from
// their rates against a common base. Rate is base-per-quote, Inverse is
// quote-per-base; both are rounded to four decimal places.
type CrossRate struct {
	Base    string  `json:"base"`
	Quote   string  `json:"quote"`
	Rate    float64 `json:"rate"`
	Inverse float64 `json:"inverse"`
}
