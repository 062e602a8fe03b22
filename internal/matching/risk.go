package matching

import "polifund/grant-matcher/internal/models"

// RiskResult is the outcome of the company-level risk screening, which
// runs before any criteria evaluation. A hard fail disqualifies the
// company for the announcement outright; soft penalties only reduce
// the score.
type RiskResult struct {
	HardFail        bool
	HardFailReasons []string
	Penalty         int
	Warnings        []string
}

// EvaluateRisk classifies declared risk flags. Closed business, an
// insolvency proceeding, and a current default always hard-fail.
// Arrears hard-fail under the default policy; with ArrearsHardFail off
// they surface as a warning instead. Soft penalties are additive and
// clamp to RiskPenaltyCap; warnings cap at MaxWarnings.
func EvaluateRisk(flags *models.RiskFlags, policy Policy) RiskResult {
	var result RiskResult
	if flags == nil {
		return result
	}

	if flags.BusinessClosed {
		result.HardFailReasons = append(result.HardFailReasons, MsgHardFailClosed)
	}
	if flags.InsolvencyProceeding {
		result.HardFailReasons = append(result.HardFailReasons, MsgHardFailInsolvency)
	}
	if flags.CurrentDefault {
		result.HardFailReasons = append(result.HardFailReasons, MsgHardFailDefault)
	}

	anyArrears := flags.TaxArrears || flags.LocalTaxArrears || flags.InsuranceArrears
	if policy.ArrearsHardFail {
		if flags.TaxArrears {
			result.HardFailReasons = append(result.HardFailReasons, MsgHardFailTax)
		}
		if flags.LocalTaxArrears {
			result.HardFailReasons = append(result.HardFailReasons, MsgHardFailLocalTax)
		}
		if flags.InsuranceArrears {
			result.HardFailReasons = append(result.HardFailReasons, MsgHardFailInsurance)
		}
	} else if anyArrears {
		result.Warnings = append(result.Warnings, MsgWarnArrearsTolerated)
	}

	if len(result.HardFailReasons) > 0 {
		result.HardFail = true
		return result
	}

	if flags.GuaranteeAccidentOpen {
		result.Penalty += PenaltyGuaranteeAccidentOpen
		result.Warnings = append(result.Warnings, MsgWarnGuaranteeOpen)
	}
	if flags.PastDefaultResolved {
		result.Penalty += PenaltyPastDefaultResolved
		result.Warnings = append(result.Warnings, MsgWarnPastDefault)
	}
	if flags.GuaranteeAccidentResolved {
		result.Penalty += PenaltyGuaranteeAccidentResolved
		result.Warnings = append(result.Warnings, MsgWarnGuaranteeResolved)
	}
	if flags.OverLeveraged {
		result.Penalty += PenaltyOverLeveraged
		result.Warnings = append(result.Warnings, MsgWarnOverLeveraged)
	}

	if result.Penalty > RiskPenaltyCap {
		result.Penalty = RiskPenaltyCap
	}
	if len(result.Warnings) > MaxWarnings {
		result.Warnings = result.Warnings[:MaxWarnings]
	}
	return result
}
