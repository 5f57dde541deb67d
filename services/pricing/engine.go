package pricing

import (
	"fmt"
	"math"

	"kdexpertise/models"
)

const (
	// Warehouse surfaces are bucketed by 100 m2 up to this cap; larger
	// surfaces are priced by extrapolation from the cap.
	warehouseBucketCap = 2000
	warehouseCapPrice  = 710
	warehousePerBucket = 30
	// Flat fallback for warehouses with no table entry at or under the cap.
	warehouseFallback = 200
)

// ComputeQuote maps a service request to a price quote. It is pure and
// deterministic: unknown kinds or missing table entries yield a zero base
// price ("on request") rather than an error, and no modifiers apply to a
// zero base.
func ComputeQuote(req models.ServiceRequest) models.PriceQuote {
	base := basePrice(req)

	perParty := base
	if base > 0 {
		for opt, selected := range req.Options {
			if !selected {
				continue
			}
			m, ok := modifierTable[opt]
			if !ok {
				continue
			}
			if m.Factor > 0 {
				perParty += base * m.Factor
			} else {
				perParty += m.Flat
			}
		}
	}

	return models.PriceQuote{
		BasePrice:     base,
		PricePerParty: perParty,
		Total:         perParty * 2,
	}
}

func basePrice(req models.ServiceRequest) float64 {
	mission := req.Mission
	if mission == "" {
		mission = models.MissionLocatif
	}

	switch req.PropertyKind {
	case models.PropertyEntrepot:
		bucket := math.Min(warehouseBucketCap, math.Ceil(req.SurfaceM2/100)*100)
		if price, ok := priceTable[tableKey(mission, models.PropertyEntrepot, int(bucket), 0)]; ok {
			return price
		}
		if req.SurfaceM2 > warehouseBucketCap {
			return warehouseCapPrice + (req.SurfaceM2-warehouseBucketCap)/100*warehousePerBucket
		}
		return warehouseFallback

	case models.PropertyStudio, models.PropertyKot:
		// Bedroom count is meaningless for these kinds.
		return priceTable[tableKey(mission, models.PropertyAppartement, 0, req.Bathrooms)]

	case models.PropertyAppartement, models.PropertyMaison, models.PropertyVilla:
		kind := req.PropertyKind
		if kind == models.PropertyVilla {
			kind = models.PropertyMaison
		}
		return priceTable[tableKey(mission, kind, req.Bedrooms, req.Bathrooms)]

	default:
		return 0
	}
}

func tableKey(mission models.MissionType, kind models.PropertyKind, bedrooms, bathrooms int) string {
	return fmt.Sprintf("%s_%s_%d_%d", mission, kind, bedrooms, bathrooms)
}
