// Package dto defines data transfer objects for the Eastmoney quote API
// responses.
package dto

// QuoteResponse represents the JSON response of the stock/get endpoint.
// Data is null when the security id is unknown. Field names follow the
// API's fixed field codes.
type QuoteResponse struct {
	Data *QuoteData `json:"data"`
}

// QuoteData carries the requested quote fields (fltt=2 returns plain
// decimals).
type QuoteData struct {
	Latest        float64 `json:"f43"`  // Latest price
	High          float64 `json:"f44"`  // Day high
	Open          float64 `json:"f46"`  // Day open
	Code          string  `json:"f57"`  // Security code
	Name          string  `json:"f58"`  // Security name
	Change        float64 `json:"f169"` // Change amount
	ChangePercent float64 `json:"f170"` // Change percent
}
