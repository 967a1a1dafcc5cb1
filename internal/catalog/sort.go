package catalog

import (
	"math"
	"sort"
)

type SortFilter string

const (
	SortAll          SortFilter = "all"
	SortBestSelling  SortFilter = "best-selling"
	SortLowestPrice  SortFilter = "lowest-price"
	SortHighestRated SortFilter = "highest-rated"
)

// SortProducts returns a re-ordered copy of in. The input slice is never
// mutated and ties keep their original relative order. An unknown filter
// behaves like SortAll.
func SortProducts(in []Product, f SortFilter) []Product {
	out := make([]Product, len(in))
	copy(out, in)

	switch f {
	case SortBestSelling:
		keys := soldKeys(out)
		sort.SliceStable(out, func(i, j int) bool { return keys[out[i].ID] > keys[out[j].ID] })
	case SortLowestPrice:
		sort.SliceStable(out, func(i, j int) bool { return priceKey(out[i]) < priceKey(out[j]) })
	case SortHighestRated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func soldKeys(ps []Product) map[string]int64 {
	keys := make(map[string]int64, len(ps))
	for _, p := range ps {
		keys[p.ID] = parseSoldCount(p.Sold)
	}
	return keys
}

// priceKey orders unparseable prices last.
func priceKey(p Product) int64 {
	if p.PriceCents < 0 {
		return math.MaxInt64
	}
	return p.PriceCents
}
