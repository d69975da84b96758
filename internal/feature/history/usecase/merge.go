package usecase

import (
	"sort"

	"github.com/al2work/huangjin/internal/feature/history/domain/entity"
)

// fixPair collects the morning/afternoon values observed for one
// timestamp during reconciliation. Either half may be absent.
type fixPair struct {
	morning      float64
	afternoon    float64
	hasMorning   bool
	hasAfternoon bool
}

// MergeSeries reconciles incoming observations into an existing series.
//
// It rebuilds the full key space: a timestamp-keyed map is seeded from
// existing, then overlaid with incoming so that an incoming value always
// replaces an existing value at the same timestamp (the provider may
// correct already-published fixings). The map is then emitted back as two
// ascending, duplicate-free channels. Because the overlay is a plain map
// write, merging the same payload twice yields the same result as merging
// it once.
func MergeSeries(existing, incoming entity.FixSeries) entity.FixSeries {
	pairs := map[int64]fixPair{}

	overlay := func(s entity.FixSeries) {
		for _, o := range s.Morning {
			p := pairs[o.TimestampMS]
			p.morning = o.Price
			p.hasMorning = true
			pairs[o.TimestampMS] = p
		}
		for _, o := range s.Afternoon {
			p := pairs[o.TimestampMS]
			p.afternoon = o.Price
			p.hasAfternoon = true
			pairs[o.TimestampMS] = p
		}
	}
	overlay(existing)
	overlay(incoming)

	keys := make([]int64, 0, len(pairs))
	for ts := range pairs {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var out entity.FixSeries
	for _, ts := range keys {
		p := pairs[ts]
		if p.hasMorning {
			out.Morning = append(out.Morning, entity.Observation{TimestampMS: ts, Price: p.morning})
		}
		if p.hasAfternoon {
			out.Afternoon = append(out.Afternoon, entity.Observation{TimestampMS: ts, Price: p.afternoon})
		}
	}
	return out
}
