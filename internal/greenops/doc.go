// Package greenops turns annual CO2 figures into relatable equivalencies
// (miles driven, smartphones charged, tree seedlings, days of household
// electricity) and formats carbon and energy quantities for display.
//
// Equivalencies use EPA Greenhouse Gas Equivalencies Calculator factors.
package greenops
