package extract

import (
	"regexp"
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

var (
	smsNumberPattern = regexp.MustCompile(`SMS:(.*?)(?::|;|$)`)
	smsBodyPattern   = regexp.MustCompile(`BODY:(.*?)(?:;|$)`)
)

// SMSTO:<number>:<message> or SMS:<number> with optional BODY:<message>;
func extractSMS(raw string) models.ParsedData {
	var s models.SMSData
	found := false

	if strings.HasPrefix(raw, "SMSTO:") {
		parts := strings.SplitN(raw[len("SMSTO:"):], ":", 2)
		if len(parts) > 0 {
			s.Number = parts[0]
			found = true
		}
		if len(parts) > 1 {
			s.Message = parts[1]
		}
	} else if strings.HasPrefix(raw, "SMS:") {
		if v, ok := firstGroup(smsNumberPattern, raw); ok {
			s.Number = v
			found = true
		}
		if v, ok := firstGroup(smsBodyPattern, raw); ok {
			s.Message = v
			found = true
		}
	}

	if !found {
		return nil
	}
	return s
}
