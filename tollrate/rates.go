// SPDX-License-Identifier: MIT
// Package tollrate: per-vehicle rate derivation.
//
// Contract:
//   - The coefficient table is fixed and ordered; output columns are
//     appended in exactly this order after the existing columns.
//   - Row order and identity are preserved (pure derivation).

package tollrate

import (
	"fmt"

	"github.com/katalvlaran/tolltab/table"
)

const opAddVehicleRates = "AddVehicleRates"

// ColDistance is the distance column read by both transforms.
const ColDistance = "distance"

// VehicleRate is one (vehicle category, rate coefficient) entry of the
// fixed toll-rate table.
type VehicleRate struct {
	// Vehicle is the category name, also the appended column name.
	Vehicle string

	// Coefficient scales the distance into this category's toll rate.
	Coefficient float64
}

// VehicleRates is the fixed ordered category→coefficient table.
// The slice order defines the output column order.
var VehicleRates = []VehicleRate{
	{Vehicle: "moto", Coefficient: 0.8},
	{Vehicle: "car", Coefficient: 1.2},
	{Vehicle: "rv", Coefficient: 1.5},
	{Vehicle: "bus", Coefficient: 2.2},
	{Vehicle: "truck", Coefficient: 3.6},
}

// AddVehicleRates derives a new table with one toll-rate column per
// vehicle category appended: column v = distance × coefficient(v).
//
// Zero-row input yields a zero-row table carrying all output columns.
// Errors: table.ErrMissingColumn (no distance column),
// table.ErrDuplicateColumn (a category column already present).
// Complexity: O(n) per category.
func AddVehicleRates(t *table.Table) (*table.Table, error) {
	dists, err := t.Float(ColDistance)
	if err != nil {
		return nil, fmt.Errorf("tollrate.%s: %w", opAddVehicleRates, err)
	}

	out := t
	for _, rate := range VehicleRates {
		vals := make([]float64, len(dists))
		for i, d := range dists {
			vals[i] = d * rate.Coefficient
		}
		if out, err = out.WithFloat(rate.Vehicle, vals); err != nil {
			return nil, fmt.Errorf("tollrate.%s: column %q: %w", opAddVehicleRates, rate.Vehicle, err)
		}
	}

	return out, nil
}
