package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/piresc/antarkan/internal/pkg/constants"
	"github.com/piresc/antarkan/internal/pkg/models"
)

const (
	weightSurchargeFreeLbs      = 50.0
	weightSurchargePerLbUSD     = 0.10
	volumeSurchargeMinCubicFeet = 15.0
	volumeSurchargeUSD          = 10.0
)

var priorityAddonPerMile = map[models.Priority]float64{
	models.PriorityStandard:  0,
	models.PriorityExpedited: 0.50,
	models.PriorityUrgent:    1.00,
}

// Allocation is the vehicle plan and fees for one cart
type Allocation struct {
	Vehicles     []models.VehicleAllocation
	SubtotalUSD  float64
	TotalFeesUSD float64
}

// CapacityAllocator packs a cart into vehicle classes greedily and prices the result
type CapacityAllocator struct {
	classes        []models.VehicleClass
	serviceFeeRate float64
}

type vehicleLoad struct {
	volume float64
	weight float64
}

// NewCapacityAllocator sorts a copy of the catalog by ascending capacity
func NewCapacityAllocator(catalog []models.VehicleClass, serviceFeeRate float64) *CapacityAllocator {
	classes := make([]models.VehicleClass, len(catalog))
	copy(classes, catalog)
	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].CapacityCubicFeet < classes[j].CapacityCubicFeet
	})

	return &CapacityAllocator{
		classes:        classes,
		serviceFeeRate: serviceFeeRate,
	}
}

// Allocate decides how many vehicles of which class carry the products over the given miles.
// Products accumulate into one vehicle until the largest class would overflow; the overflowing
// product is split by whole units and the rest carried into a fresh vehicle.
// Carts needing more than constants.MaxVehiclesPerQuote vehicles are rejected.
func (a *CapacityAllocator) Allocate(products []models.Product, priority models.Priority, miles float64) (*Allocation, error) {
	if len(a.classes) == 0 {
		return nil, fmt.Errorf("empty vehicle catalog")
	}
	addon, ok := priorityAddonPerMile[priority]
	if !ok {
		return nil, fmt.Errorf("%w: unknown priority %q", models.ErrInvalidQuoteRequest, priority)
	}

	loads, err := a.pack(products)
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		return nil, fmt.Errorf("%w: no products to carry", models.ErrInvalidQuoteRequest)
	}

	// weights per vehicle instance, indexed by class
	weights := make([][]float64, len(a.classes))
	for _, load := range loads {
		idx := a.classFor(load.volume)
		weights[idx] = append(weights[idx], load.weight)
	}

	allocation := &Allocation{}
	subtotal := 0.0
	for idx, split := range weights {
		if len(split) == 0 {
			continue
		}
		class := a.classes[idx]
		fee := lineFee(class, split, addon, miles)
		subtotal += fee

		allocation.Vehicles = append(allocation.Vehicles, models.VehicleAllocation{
			VehicleType:    class.Type,
			Quantity:       len(split),
			FeesUSD:        roundCents(fee),
			WeightSplitLbs: split,
		})
	}

	allocation.SubtotalUSD = roundCents(subtotal)
	allocation.TotalFeesUSD = charmPrice(subtotal * (1 + a.serviceFeeRate))
	return allocation, nil
}

func (a *CapacityAllocator) pack(products []models.Product) ([]vehicleLoad, error) {
	largest := a.classes[len(a.classes)-1].CapacityCubicFeet

	var loads []vehicleLoad
	var current vehicleLoad
	for _, product := range products {
		unitVolume := product.Dimensions.CubicFeet()
		if unitVolume > largest {
			return nil, fmt.Errorf("%w: %s needs %.2f cubic feet, largest vehicle holds %.2f",
				models.ErrNoVehicleFits, product.Name, unitVolume, largest)
		}

		remaining := product.Quantity
		for remaining > 0 {
			if current.volume+float64(remaining)*unitVolume <= largest {
				current.volume += float64(remaining) * unitVolume
				current.weight += float64(remaining) * product.WeightLbs
				break
			}

			fit := int(math.Floor((largest - current.volume) / unitVolume))
			if fit > 0 {
				current.volume += float64(fit) * unitVolume
				current.weight += float64(fit) * product.WeightLbs
				remaining -= fit
			}
			loads = append(loads, current)
			current = vehicleLoad{}
			if len(loads) >= constants.MaxVehiclesPerQuote {
				return nil, fmt.Errorf("%w: cart needs more than %d vehicles",
					models.ErrInvalidQuoteRequest, constants.MaxVehiclesPerQuote)
			}
		}
	}
	if current.volume > 0 || current.weight > 0 {
		loads = append(loads, current)
	}
	return loads, nil
}

// classFor returns the smallest class whose capacity holds volume
func (a *CapacityAllocator) classFor(volume float64) int {
	for i, class := range a.classes {
		if volume <= class.CapacityCubicFeet {
			return i
		}
	}
	return len(a.classes) - 1
}

func lineFee(class models.VehicleClass, split []float64, addonPerMile, miles float64) float64 {
	count := float64(len(split))

	fee := class.BaseFeeUSD + class.PricePerMileUSD*miles*count + addonPerMile*miles*count
	for _, w := range split {
		fee += weightSurchargePerLbUSD * math.Max(0, w-weightSurchargeFreeLbs)
	}
	if class.CapacityCubicFeet > volumeSurchargeMinCubicFeet {
		fee += volumeSurchargeUSD * count
	}
	return fee
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// charmPrice ceils to the next cent and takes one cent off
func charmPrice(v float64) float64 {
	cents := math.Ceil(v*100 - 1e-6)
	return roundCents((cents - 1) / 100)
}
