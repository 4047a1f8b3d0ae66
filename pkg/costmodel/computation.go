// Package costmodel evaluates the closed-form latency and energy model for
// idle-node-assisted edge offloading. An end user device executes the
// retained (1-x) fraction of a task locally, offloads the fraction x to a
// MEC server through the base station, and the base station relays the
// fraction omega of the offloaded slice on to an idle device.
//
// Every function is a pure map from scalar parameters to a scalar time or
// energy value. Nothing is validated or clamped here: a zero computing power
// or rate divides to +Inf and an SINR at or below -1 produces NaN from the
// logarithm, exactly as IEEE float semantics dictate. Callers that want
// up-front domain checks use models.Scenario.Validate.
package costmodel

// LocalExecutionTime returns the time to execute the retained (1-x) fraction
// of the task on the local device: (1-x) * c * d / f, where c is CPU cycles
// per bit, d the task size in bits and f the local computing power in Hz.
func LocalExecutionTime(c, d, f, x float64) float64 {
	return (1 - x) * c * d / f
}

// FullLocalExecutionTime returns the execution time with nothing offloaded.
// It is LocalExecutionTime at x=0 by definition, not just numerically.
func FullLocalExecutionTime(c, d, f float64) float64 {
	return LocalExecutionTime(c, d, f, 0)
}

// LocalExecutionEnergy returns the energy spent executing the retained (1-x)
// fraction locally. thetaExe is the energy cost per CPU cycle, so the total
// is cycles * (1-x) * thetaExe with cycles = c * d.
func LocalExecutionEnergy(c, d, thetaExe, x float64) float64 {
	cycles := c * d
	return cycles * (1 - x) * thetaExe
}

// FullLocalExecutionEnergy returns LocalExecutionEnergy at x=0.
func FullLocalExecutionEnergy(c, d, thetaExe float64) float64 {
	return LocalExecutionEnergy(c, d, thetaExe, 0)
}

// MECExecutionTime returns the time the MEC server spends on the share of
// the offloaded slice it retains. The offloaded slice is x*d bits; the MEC
// keeps the (1-omega) fraction of it and computes at power f.
func MECExecutionTime(x, d, omega, c, f float64) float64 {
	offloaded := x * d
	return c * (1 - omega) * offloaded / f
}

// MECExecutionEnergy returns the energy the MEC server spends on its
// (1-omega) share of the offloaded slice.
func MECExecutionEnergy(x, d, omega, c, thetaExe float64) float64 {
	offloaded := x * d
	return c * (1 - omega) * offloaded * thetaExe
}

// IDExecutionTime returns the time the idle device spends on the omega
// fraction of the offloaded slice, computing at power fID.
func IDExecutionTime(c, omega, x, d, fID float64) float64 {
	offloaded := x * d
	return c * omega * offloaded / fID
}

// IDExecutionEnergy returns the energy the idle device spends on its omega
// share of the offloaded slice.
func IDExecutionEnergy(c, omega, x, d, thetaExe float64) float64 {
	offloaded := x * d
	return c * omega * offloaded * thetaExe
}
