// Package eos evaluates cubic equations of state for the compressibility
// factor Z = PV/(RT).
//
// Three models are available:
//
//   - [Ideal]: Z = 1 for every state
//   - [VanDerWaals]: a = 27R²Tc²/(64Pc), b = RTc/(8Pc)
//   - [PengRobinson]: temperature-dependent attraction through the alpha
//     function of the acentric factor
//
// Each real model reduces to a monic cubic in Z which is solved by
// [cubic.Solve]; the largest real root (vapor branch) is returned.
//
// # Example
//
//	z, err := eos.Z(eos.PengRobinson, species.CarbonDioxide, 50e5, 310)
//	if err != nil {
//	    return err
//	}
//	v := z * thermo.GasConstant * 310 / 50e5 // m³/mol
package eos
