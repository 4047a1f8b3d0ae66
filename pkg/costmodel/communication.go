package costmodel

import "math"

// SINREUToBS returns the signal-to-interference-plus-noise ratio on the
// uplink from an end user to the base station. interference is the aggregate
// received power of the co-channel users; the noise power sigmaSq is strictly
// positive so the ratio is finite for finite inputs.
func SINREUToBS(pTran, gain, sigmaSq, interference float64) float64 {
	return pTran * gain / (sigmaSq + interference)
}

// SINRBSToID returns the SINR on the base station to idle device link. The
// relay link is dedicated, so there is no interference term.
func SINRBSToID(pTran, gain, sigmaSq float64) float64 {
	return pTran * gain / sigmaSq
}

// TransmissionRate returns the Shannon capacity of a link: bandwidth times
// log2(1+sinr). A sinr of zero yields a rate of zero; a sinr below -1 is a
// domain violation and yields NaN.
func TransmissionRate(bandwidth, sinr float64) float64 {
	return bandwidth * math.Log2(1+sinr)
}

// EUToBSTransmissionTime returns the time to push the offloaded slice x*d
// over the uplink at the given rate.
func EUToBSTransmissionTime(x, d, rate float64) float64 {
	return x * d / rate
}

// BSToIDTransmissionTime returns the time to relay the omega fraction of the
// offloaded slice from the base station to the idle device.
func BSToIDTransmissionTime(omega, x, d, rate float64) float64 {
	return omega * x * d / rate
}

// EUTransmissionEnergy returns the uplink transmission energy: power times
// transmission time times the per-unit transmission energy cost.
func EUTransmissionEnergy(pTran, t, thetaTran float64) float64 {
	return pTran * t * thetaTran
}

// BSTransmissionEnergy returns the relay hop transmission energy.
func BSTransmissionEnergy(pTran, t, thetaTran float64) float64 {
	return pTran * t * thetaTran
}

// OffloadingDelay returns the end-to-end delay of the offloaded branch. The
// uplink transfer is sequential; at the base station the task fans out into
// the MEC branch and the relay branch (BS->ID transfer then ID execution),
// which proceed in parallel, so the fan-out contributes the slower of the
// two.
func OffloadingDelay(tEUBS, tMEC, tID, tBSID float64) float64 {
	return tEUBS + math.Max(tMEC, tID+tBSID)
}

// TotalTaskTime returns the task completion time: the local execution of the
// retained fraction and the offloaded branch run in parallel, and the task
// finishes when the slower of the two does.
func TotalTaskTime(tLocal, tOff float64) float64 {
	return math.Max(tLocal, tOff)
}
