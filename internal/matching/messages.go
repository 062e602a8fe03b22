package matching

// Fixed sentence templates emitted by the engine. These are the only
// human-readable strings the engine produces; anything richer is the
// presentation layer's job.

// Rejection reasons, in report order.
const (
	MsgRejectBizType        = "업태 조건 불충족"
	MsgRejectExcludeKeyword = "제외 키워드 포함: %s"
	MsgRejectYears          = "업력 조건 불충족"
	MsgRejectRevenue        = "매출 조건 불충족"
	MsgRejectRegion         = "지역 조건 불충족"
)

// Positive criteria reasons.
const (
	MsgBizTypeMet      = "업태 조건 충족"
	MsgYearsMet        = "업력 조건 충족"
	MsgYearsUnknown    = "업력 정보 없음"
	MsgRevenueMet      = "매출 조건 충족"
	MsgRegionMet       = "지역 조건 충족"
	MsgKeywordsMatched = "종목·키워드 일치"
	MsgItemsPresent    = "종목 정보 있음"
)

// Reason padding for the three-line summary.
const (
	MsgBizTypeSummary = "업태: %s"
	MsgGenericMet     = "조건 충족"
)

// Certification bonus sentences.
const (
	MsgCertVenture       = "벤처기업 인증 보유로 기술·R&D 자금 가점 가능"
	MsgCertPatent        = "특허 보유로 기술·지식재산 관련 자금 가점 가능"
	MsgCertExport        = "수출실적 보유 기업으로 수출 바우처 계열 적합"
	MsgCertClearanceDocs = "납세·4대보험 증빙 가능 상태로 신청 리스크 낮음"
)

// Hard-fail risk messages.
const (
	MsgHardFailClosed     = "폐업·휴업 상태로 정책자금 신청 불가"
	MsgHardFailInsolvency = "회생·파산·청산 절차 진행 중으로 신청 불가"
	MsgHardFailDefault    = "현재 연체 중으로 신청 불가"
	MsgHardFailTax        = "국세 체납으로 신청 불가"
	MsgHardFailLocalTax   = "지방세 체납으로 신청 불가"
	MsgHardFailInsurance  = "4대보험 체납으로 신청 불가"
)

// Soft risk warnings.
const (
	MsgWarnGuaranteeOpen     = "미해소 보증사고 이력으로 감점"
	MsgWarnPastDefault       = "과거 연체 이력(해소)으로 감점"
	MsgWarnGuaranteeResolved = "과거 보증사고 이력(해소)으로 감점"
	MsgWarnOverLeveraged     = "과다 차입 의심으로 감점"
	MsgWarnArrearsTolerated  = "체납 이력 확인 필요(공고별 허용 여부 상이)"
)
