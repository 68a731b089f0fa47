/*
NAME
  ratematch.go

DESCRIPTION
  ratematch.go implements the PUSCH rate-matching sizer of §4.4: the
  Q'_ack and Q'_csi1 resource-element budget formulas.

AUTHOR
  Saxon Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package uci

import "math"

// sumMUciSC returns Sigma M_uci_sc[l] over the given symbol range
// [from, 14).
func sumMUciSC(cfg *PUSCHConfig, from int) int {
	sum := 0
	for l := from; l < len(cfg.MUciSC); l++ {
		sum += cfg.MUciSC[l]
	}
	return sum
}

func validateRate(cfg *PUSCHConfig) error {
	if math.IsNaN(cfg.R) || math.IsInf(cfg.R, 0) || cfg.R <= 0 {
		return newErr(InvalidInput, "rate matching: R must be a finite positive number, got %v", cfg.R)
	}
	if cfg.NofLayers == 0 {
		return newErr(InvalidInput, "rate matching: nof_layers must be nonzero")
	}
	if cfg.Modulation.Qm() == 0 {
		return newErr(InvalidInput, "rate matching: unrecognised modulation %v", cfg.Modulation)
	}
	return nil
}

// puschQPrimeACK computes Q'_ack per §4.4.
func puschQPrimeACK(cfg *PUSCHConfig, oACK, lACK int) (int, error) {
	if err := validateRate(cfg); err != nil {
		return 0, err
	}
	qm := float64(cfg.Modulation.Qm())
	sumAll := float64(sumMUciSC(cfg, 0))
	capVal := cfg.Alpha * float64(sumMUciSC(cfg, cfg.L0))

	var raw float64
	if cfg.KSum == 0 {
		raw = math.Ceil(float64(oACK+lACK) * cfg.BetaHARQACKOffset / (qm * cfg.R))
	} else {
		raw = math.Ceil(float64(oACK+lACK) * cfg.BetaHARQACKOffset * sumAll / float64(cfg.KSum))
	}
	return int(math.Min(raw, capVal)), nil
}

// puschQPrimeCSI1 computes Q'_csi1 per §4.4. qACK is the already-computed
// Q'_ack, needed by the budget-remaining branches.
func puschQPrimeCSI1(cfg *PUSCHConfig, oACK, oCSI1, lCSI1, qACK int) (int, error) {
	if err := validateRate(cfg); err != nil {
		return 0, err
	}
	qm := float64(cfg.Modulation.Qm())
	mUciSum := float64(sumMUciSC(cfg, 0))

	if cfg.KSum == 0 && !cfg.CSIPart2Present {
		return int(mUciSum) - qACK, nil
	}

	var raw, limit float64
	if cfg.KSum == 0 {
		raw = math.Ceil(float64(oCSI1+lCSI1) * cfg.BetaCSI1Offset / (qm * cfg.R))
		limit = cfg.Alpha*mUciSum - float64(qACK)
	} else {
		raw = math.Ceil(float64(oCSI1+lCSI1) * cfg.BetaCSI1Offset * mUciSum / float64(cfg.KSum))
		limit = math.Ceil(cfg.Alpha*mUciSum) - float64(qACK)
	}
	return int(math.Min(raw, limit)), nil
}

// PUSCHACKNofBits computes the rate-matched bit count for oACK HARQ-ACK
// bits on PUSCH: Q'_ack * nof_layers * Qm.
func PUSCHACKNofBits(cfg *PUSCHConfig, oACK int) (int, error) {
	lACK := crcLen(oACK)
	q, err := puschQPrimeACK(cfg, oACK, lACK)
	if err != nil {
		return 0, err
	}
	return q * cfg.NofLayers * cfg.Modulation.Qm(), nil
}

// puschCSI1NofBits computes the rate-matched bit count for an
// oCSI1-bit CSI Part 1 field on PUSCH, with O_ack' = max(2, O_ack)
// reserving the HARQ-ACK budget.
func puschCSI1NofBits(cfg *PUSCHConfig, oACK, oCSI1 int) (int, error) {
	oACKPrime := oACK
	if oACKPrime < 2 {
		oACKPrime = 2
	}
	lACK := crcLen(oACKPrime)
	qACK, err := puschQPrimeACK(cfg, oACKPrime, lACK)
	if err != nil {
		return 0, err
	}
	lCSI1 := crcLen(oCSI1)
	q, err := puschQPrimeCSI1(cfg, oACKPrime, oCSI1, lCSI1, qACK)
	if err != nil {
		return 0, err
	}
	return q * cfg.NofLayers * cfg.Modulation.Qm(), nil
}

// PUSCHCSI1NofBits computes the rate-matched bit count for cfg's CSI
// Part 1 field on PUSCH, sizing the packed width through the CSI
// collaborator.
func (h *Handle) PUSCHCSI1NofBits(cfg *UCIConfig) (int, error) {
	return puschCSI1NofBits(&cfg.PUSCH, cfg.OACK, h.csi.NofBits(cfg.CSI))
}
