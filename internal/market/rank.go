package market

import (
	"strings"

	"github.com/OzgurKaptann/mini-market-dashboard/pkg/models"
)

// Project is the pure display projection: filter by query, then partition
// with favorites first. It has no hidden state, so it can be recomputed on
// every change to the query, the asset list, or the favorite set.
func Project(assets []models.Asset, favorites []string, query string) []models.Asset {
	filtered := Filter(assets, query)
	return Rank(filtered, favorites)
}

// Filter keeps assets whose name or symbol contains the query as a
// case-insensitive substring. A blank query keeps everything.
func Filter(assets []models.Asset, query string) []models.Asset {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return assets
	}

	matched := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		name := strings.ToLower(asset.Name)
		symbol := strings.ToLower(asset.Symbol)
		if strings.Contains(name, q) || strings.Contains(symbol, q) {
			matched = append(matched, asset)
		}
	}
	return matched
}

// Rank partitions assets with every favorited asset before every
// non-favorited one. Within each partition the upstream order is kept;
// there is no secondary sort key.
func Rank(assets []models.Asset, favorites []string) []models.Asset {
	if len(favorites) == 0 {
		return assets
	}

	favSet := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favSet[id] = struct{}{}
	}

	ranked := make([]models.Asset, 0, len(assets))
	rest := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if _, ok := favSet[asset.ID]; ok {
			ranked = append(ranked, asset)
		} else {
			rest = append(rest, asset)
		}
	}

	return append(ranked, rest...)
}
