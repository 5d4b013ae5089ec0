// Package physical is a dimensional-analysis and unit-algebra engine.
// Calculations carry physical dimension and unit information alongside
// numeric magnitude, so invalid combinations (adding a force to a mass) are
// rejected and valid ones are expressed in a correct, convertible unit.
//
// # Architecture
//
// The module is layered leaf-first:
//
//	┌─────────────────────────────────────┐
//	│            quantity                 │  magnitude + unit,
//	│   (arithmetic, conversion engine)   │  conversion engine
//	└─────────────────────────────────────┘
//	           ↓ delegates unit results to
//	┌─────────────────────────────────────┐
//	│              unit                   │  definitions, registry,
//	│    (composite units, unit algebra)  │  merge/cancel/power
//	└─────────────────────────────────────┘
//	           ↓ fingerprinted by
//	┌─────────────────────────────────────┐
//	│       dimension + number            │  dimension vectors over
//	│   (base dimensions, tiered numbers) │  exact-tier exponents
//	└─────────────────────────────────────┘
//
// The number package keeps unit exponents in the most exact of three tiers
// (integer, rational, floating), which is what makes compositions like
// (m^5)^(1/5) return exactly to meter while a floating exponent of 1.0 stays
// distinct from the exact integer 1.
//
// The unit registry follows an initialize-then-freeze lifecycle: the catalog
// package seeds it once at process start (built-in SI catalog plus optional
// YAML catalogs), the caller freezes it, and all later lookups are read-only.
// After the freeze point every type in the module is an immutable value, so
// all operations are safe to run concurrently without locking.
//
// # Quick Start
//
//	reg, err := catalog.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cm, _ := quantity.Make(10.5, "centimeter", reg)
//	ft, _ := quantity.Make(3.3, "foot", reg)
//
//	sum, err := cm.Add(ft) // commensurable: both lengths
//	if err != nil {
//	    // errors.ErrIncommensurableDimensions for invalid combinations
//	}
//
//	mm, _ := reg.Lookup("millimeter")
//	out, _ := sum.Convert(unit.FromDefinition(mm))
//
// Every failure mode is an explicit error return classified by the errors
// package; see that package for the full list.
package physical
