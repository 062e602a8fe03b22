package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"polifund/grant-matcher/internal/models"
)

func TestRiskNilFlagsIsClean(t *testing.T) {
	result := EvaluateRisk(nil, DefaultPolicy())

	assert.False(t, result.HardFail)
	assert.Zero(t, result.Penalty)
	assert.Empty(t, result.HardFailReasons)
	assert.Empty(t, result.Warnings)
}

func TestRiskUnconditionalHardFails(t *testing.T) {
	tests := []struct {
		name   string
		flags  models.RiskFlags
		reason string
	}{
		{"closed business", models.RiskFlags{BusinessClosed: true}, MsgHardFailClosed},
		{"insolvency proceeding", models.RiskFlags{InsolvencyProceeding: true}, MsgHardFailInsolvency},
		{"current default", models.RiskFlags{CurrentDefault: true}, MsgHardFailDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateRisk(&tt.flags, DefaultPolicy())
			assert.True(t, result.HardFail)
			assert.Equal(t, []string{tt.reason}, result.HardFailReasons)
		})
	}
}

func TestRiskArrearsHardFailByDefault(t *testing.T) {
	flags := &models.RiskFlags{TaxArrears: true, InsuranceArrears: true}

	result := EvaluateRisk(flags, DefaultPolicy())

	assert.True(t, result.HardFail)
	assert.Equal(t, []string{MsgHardFailTax, MsgHardFailInsurance}, result.HardFailReasons)
}

func TestRiskArrearsDowngradedUnderRelaxedPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.ArrearsHardFail = false
	flags := &models.RiskFlags{LocalTaxArrears: true}

	result := EvaluateRisk(flags, policy)

	assert.False(t, result.HardFail)
	assert.Zero(t, result.Penalty)
	assert.Equal(t, []string{MsgWarnArrearsTolerated}, result.Warnings)
}

func TestRiskHardFailSkipsSoftPenalties(t *testing.T) {
	flags := &models.RiskFlags{
		BusinessClosed:        true,
		GuaranteeAccidentOpen: true,
	}

	result := EvaluateRisk(flags, DefaultPolicy())

	assert.True(t, result.HardFail)
	assert.Zero(t, result.Penalty)
}

func TestRiskSoftPenalties(t *testing.T) {
	tests := []struct {
		name    string
		flags   models.RiskFlags
		penalty int
		warning string
	}{
		{"open guarantee accident", models.RiskFlags{GuaranteeAccidentOpen: true}, PenaltyGuaranteeAccidentOpen, MsgWarnGuaranteeOpen},
		{"past default resolved", models.RiskFlags{PastDefaultResolved: true}, PenaltyPastDefaultResolved, MsgWarnPastDefault},
		{"guarantee accident resolved", models.RiskFlags{GuaranteeAccidentResolved: true}, PenaltyGuaranteeAccidentResolved, MsgWarnGuaranteeResolved},
		{"over leveraged", models.RiskFlags{OverLeveraged: true}, PenaltyOverLeveraged, MsgWarnOverLeveraged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateRisk(&tt.flags, DefaultPolicy())
			assert.False(t, result.HardFail)
			assert.Equal(t, tt.penalty, result.Penalty)
			assert.Equal(t, []string{tt.warning}, result.Warnings)
		})
	}
}

func TestRiskPenaltyClampsAndWarningsCap(t *testing.T) {
	flags := &models.RiskFlags{
		GuaranteeAccidentOpen:     true,
		PastDefaultResolved:       true,
		GuaranteeAccidentResolved: true,
		OverLeveraged:             true,
	}

	result := EvaluateRisk(flags, DefaultPolicy())

	// 20+8+5+5 = 38 before the clamp.
	assert.Equal(t, RiskPenaltyCap, result.Penalty)
	assert.Len(t, result.Warnings, MaxWarnings)
	assert.Equal(t, []string{MsgWarnGuaranteeOpen, MsgWarnPastDefault, MsgWarnGuaranteeResolved}, result.Warnings)
}
