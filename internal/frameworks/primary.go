package frameworks

import "stackwatch/internal/models"

// MarkPrimary elects the primary framework among one ecosystem's detections
// and sets its Primary flag. Ties break on declared signature priority, then
// larger match count, then lexical framework id. Returns the primary id, or
// "" when no detection carries a signature at or above PrimaryThreshold.
//
// Each ecosystem elects independently; there is no global winner across
// ecosystems.
func MarkPrimary(eco models.Ecosystem, detected []models.DetectedFramework) string {
	best := -1
	bestPriority := 0

	for i, fw := range detected {
		sig, ok := signatureFor(eco, fw.Framework)
		if !ok || sig.Priority < PrimaryThreshold {
			continue
		}
		if best < 0 || beats(sig.Priority, fw, bestPriority, detected[best]) {
			best = i
			bestPriority = sig.Priority
		}
	}

	if best < 0 {
		return ""
	}
	detected[best].Primary = true
	return detected[best].Framework
}

func beats(priority int, fw models.DetectedFramework, bestPriority int, best models.DetectedFramework) bool {
	if priority != bestPriority {
		return priority > bestPriority
	}
	if fw.MatchCount != best.MatchCount {
		return fw.MatchCount > best.MatchCount
	}
	return fw.Framework < best.Framework
}
