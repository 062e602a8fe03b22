package matching

// Certification bonus tiers. Keys mirror the intake form's
// certification checklist.
var (
	certsPlus4 = []string{"venture", "innobiz", "mainbiz", "research_lab"}
	certsPlus2 = []string{"women_owned", "disabled_owned", "social_enterprise"}
	certsPlus1 = []string{"iso9001", "iso14001", "iso45001", "iso27001", "isms", "haccp", "gmp"}

	// Export family shares one sentence regardless of how many keys
	// are held; only export_experience itself scores.
	certsExport = []string{"export_experience", "direct_export", "certified_exporter"}

	// Compliance-document certifications add no points, only the
	// risk-reduction sentence.
	certsClearance = []string{"tax_clearance", "local_tax_clearance", "insurance_clearance"}
)

// CertBonus is the additive certification score plus its explanatory
// sentences, computed from the set of held certification keys.
type CertBonus struct {
	Bonus       int
	ReasonLines []string
}

// EvaluateCertifications maps held certifications to a capped score
// bonus. Tiering: top-tier marks +4 each, patents +3, export track
// record +3 combined, social/diversity +2 each, management systems +1
// each. The sum clamps to CertBonusCap.
func EvaluateCertifications(certifications []string) CertBonus {
	held := make(map[string]bool, len(certifications))
	for _, key := range certifications {
		held[key] = true
	}

	var result CertBonus

	anyTop := false
	for _, key := range certsPlus4 {
		if held[key] {
			result.Bonus += 4
			anyTop = true
		}
	}
	if anyTop {
		result.ReasonLines = append(result.ReasonLines, MsgCertVenture)
	}

	if held["patent"] {
		result.Bonus += 3
		result.ReasonLines = append(result.ReasonLines, MsgCertPatent)
	}

	if held["export_experience"] {
		result.Bonus += 3
	}
	if anyHeld(held, certsExport) {
		result.ReasonLines = appendUnique(result.ReasonLines, MsgCertExport)
	}

	for _, key := range certsPlus2 {
		if held[key] {
			result.Bonus += 2
		}
	}
	for _, key := range certsPlus1 {
		if held[key] {
			result.Bonus++
		}
	}

	if anyHeld(held, certsClearance) {
		result.ReasonLines = append(result.ReasonLines, MsgCertClearanceDocs)
	}

	if result.Bonus > CertBonusCap {
		result.Bonus = CertBonusCap
	}
	return result
}

func anyHeld(held map[string]bool, keys []string) bool {
	for _, key := range keys {
		if held[key] {
			return true
		}
	}
	return false
}

func appendUnique(lines []string, line string) []string {
	for _, existing := range lines {
		if existing == line {
			return lines
		}
	}
	return append(lines, line)
}
