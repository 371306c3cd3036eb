// Package abg classifies arterial blood-gas readings and provides the
// geometry of the acid-base map.
//
// # Overview
//
// A reading is the triple (pH, PaCO2, HCO3). The package offers three pure
// operations on readings:
//
//   - [CalculatePH] derives pH from PaCO2 and HCO3 with the
//     Henderson-Hasselbalch relation (pK 6.1, CO2 solubility 0.03).
//   - [Classify] maps a reading to one of a closed set of acid-base
//     categories and a symbolic display color.
//   - [SampleRing] samples a ring of nearby readings at a fixed PaCO2/HCO3
//     radius, used to draw an uncertainty circle on the map.
//
// # Quick Start
//
//	m, err := abg.NewMeasurement(40, 24)
//	if err != nil {
//	    return err
//	}
//	r := m.Classify() // {Normal Green}
//	ring := abg.SampleRing(m.PaCO2, m.HCO3, 2, 100)
//
// # Classification table
//
// The classifier is an ordered table of rules (see [Rules]) grouped by pH
// band. [Evaluate] reports which row matched, so rows that can never fire
// can be audited. The classifier trusts the pH it is given, even when it
// disagrees with PaCO2 and HCO3, and is total: non-finite input classifies
// as Undefined/Gray.
//
// # Map geometry
//
// [Isopleth] and [RegionGrid] describe the acid-base map itself: the
// constant-PaCO2 curves and the classification color of every node of a
// lattice over pH/HCO3. The chart sub-package renders them.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route diagnostics
// to a log/slog logger.
package abg

// Version is the current version of the module.
const Version = "0.1.0"
