// Package statmech evaluates small statistical-mechanics models: a two-level
// system, an Einstein oscillator, a rigid diatomic rotor and a 2D ideal gas.
//
// The two-level system, oscillator and 2D gas work in reduced units with
// kB = 1. The rotor uses SI constants.
package statmech
