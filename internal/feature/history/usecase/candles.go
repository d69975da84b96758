package usecase

import (
	"time"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
)

// The provider reports silver in CNY per kilogram while gold is CNY per
// gram; divide silver by 1000 so both series share the same unit.
const silverUnitDivisor = 1000

// Provider timestamps encode local midnight of the trading day in a
// different zone; shifting by +8h before truncating yields the trading
// day the provider intends rather than the naive UTC date.
const dayLabelShift = 8 * time.Hour

// ToCandles converts a merged fixing series into an ordered OHLC series.
//
// The morning channel is the canonical day key: open is the morning
// fixing and close is the afternoon fixing at the exact same timestamp,
// falling back to the open on half days. High and low are derived from
// open/close only because the feed carries no intraday extrema.
// Afternoon observations without a matching morning timestamp are
// dropped rather than emitted as their own candle.
func ToCandles(series entity.FixSeries, symbol string) []entity.Candle {
	divisor := 1.0
	if symbol == SymbolSilver {
		divisor = silverUnitDivisor
	}

	afternoon := make(map[int64]float64, len(series.Afternoon))
	for _, o := range series.Afternoon {
		afternoon[o.TimestampMS] = o.Price
	}

	candles := make([]entity.Candle, 0, len(series.Morning))
	for _, o := range series.Morning {
		open := o.Price / divisor
		close := open
		if p, ok := afternoon[o.TimestampMS]; ok {
			close = p / divisor
		}
		candles = append(candles, entity.Candle{
			Time:  dayLabel(o.TimestampMS),
			Open:  open,
			High:  max(open, close),
			Low:   min(open, close),
			Close: close,
		})
	}
	return candles
}

// dayLabel derives the "2006-01-02" trading-day label from a provider
// timestamp.
func dayLabel(tsMillis int64) string {
	return time.UnixMilli(tsMillis).UTC().Add(dayLabelShift).Format("2006-01-02")
}

// periodWindows maps a requested period to the trailing candle count.
var periodWindows = map[string]int{
	"1w": 5,
	"2w": 10,
	"1m": 30,
	"3m": 90,
	"6m": 180,
	"1y": 365,
}

// SelectWindow returns the trailing slice of candles for the requested
// period. "All" returns the whole series, unknown periods fall back to
// the one-week window, and a series shorter than the window is returned
// as is.
func SelectWindow(candles []entity.Candle, period string) []entity.Candle {
	if period == "All" {
		return candles
	}
	n, ok := periodWindows[period]
	if !ok {
		n = periodWindows["1w"]
	}
	if len(candles) <= n {
		return candles
	}
	return candles[len(candles)-n:]
}
