// Package config loads game settings from an HCL file.
//
// Every attribute is optional and overrides the base settings it is merged
// into. Expressions are evaluated with two variables in scope: `defaults`, an
// object holding the base values, and `lanes`, the resolved lane count. This
// keeps the default row policy expressible in the file itself:
//
//	lanes        = 6
//	rows         = lanes * 3
//	probability  = defaults.probability
//	participants = ["Aoi", "Ren", "Mio"]
package config
