// Package entity defines the domain models for the history feature.
package entity

// Observation is a single benchmark fixing reading published by the
// exchange: the millisecond timestamp of the trading day and the fixing
// price in CNY per gram.
type Observation struct {
	TimestampMS int64   // Provider timestamp (local midnight encoded in ms)
	Price       float64 // Fixing price as reported by the provider
}

// FixSeries holds the two daily fixing channels of one instrument.
// Both channels are kept in ascending timestamp order with no duplicate
// timestamps; a timestamp present in only one channel is valid half-day
// data.
type FixSeries struct {
	Morning   []Observation // 早盘 (zp) fixings
	Afternoon []Observation // 午盘 (wp) fixings
}

// Empty reports whether the series carries no observations at all.
func (s FixSeries) Empty() bool {
	return len(s.Morning) == 0 && len(s.Afternoon) == 0
}

// Candle represents one OHLC candlestick derived from the morning and
// afternoon fixings of a single trading day. It is recomputed from the
// FixSeries on every read and never stored.
type Candle struct {
	Time  string  // Trading day, "2006-01-02"
	Open  float64 // Morning fixing
	High  float64 // max(Open, Close)
	Low   float64 // min(Open, Close)
	Close float64 // Afternoon fixing, or Open on half days
}
