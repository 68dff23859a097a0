package classifying

import (
	"github.com/poka-net3/kitchen-dashboard-api/internal/config"
	"github.com/poka-net3/kitchen-dashboard-api/internal/domain"
)

// Classifier resolves a catalog category to its operational zone.
type Classifier interface {
	Classify(categoryID int) domain.Zone
}

// StaticClassifier partitions category ids into the three zones. The
// partition is built once from configuration and never mutated, so it
// is safe to share across concurrent aggregation runs.
type StaticClassifier struct {
	zoneByCategory map[int]domain.Zone
}

func New(hot, cold, bar []int) *StaticClassifier {
	zoneByCategory := make(map[int]domain.Zone, len(hot)+len(cold)+len(bar))
	for _, id := range hot {
		zoneByCategory[id] = domain.ZoneHot
	}
	for _, id := range cold {
		zoneByCategory[id] = domain.ZoneCold
	}
	for _, id := range bar {
		zoneByCategory[id] = domain.ZoneBar
	}

	return &StaticClassifier{zoneByCategory: zoneByCategory}
}

func NewFromConfig(cfg *config.Config) *StaticClassifier {
	return New(cfg.Zones.HotCategories, cfg.Zones.ColdCategories, cfg.Zones.BarCategories)
}

// Classify returns the zone for a category id. Ids in none of the
// configured sets classify as unclassified and are excluded from every
// downstream total.
func (c *StaticClassifier) Classify(categoryID int) domain.Zone {
	if zone, ok := c.zoneByCategory[categoryID]; ok {
		return zone
	}
	return domain.ZoneUnclassified
}
