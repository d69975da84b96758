// Package dto defines data transfer objects for the SGE benchmark feed
// responses.
package dto

// DailyFixResponse represents the JSON response of the daily benchmark
// price endpoints. Each element is a [timestampMillis, price] pair; zp is
// the morning (早盘) channel, wp the afternoon (午盘) channel. Either
// channel may be absent or shorter than the other.
type DailyFixResponse struct {
	Zp [][]float64 `json:"zp"`
	Wp [][]float64 `json:"wp"`
}
