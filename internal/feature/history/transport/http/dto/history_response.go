package dto

// CandleResponse is the response DTO for one OHLC candlestick.
type CandleResponse struct {
	Time  string  `json:"time"`  // Trading day ("2006-01-02")
	Open  float64 `json:"open"`  // Morning fixing
	High  float64 `json:"high"`  // max(open, close)
	Low   float64 `json:"low"`   // min(open, close)
	Close float64 `json:"close"` // Afternoon fixing
}

// HistoryResponse is the envelope returned by GET /history. An empty
// Data slice is a valid "no data yet" state for the UI, not an error.
type HistoryResponse struct {
	Symbol string           `json:"symbol"`
	Period string           `json:"period"`
	Data   []CandleResponse `json:"data"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
