package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

var (
	matmsgToPattern      = regexp.MustCompile(`TO:(.*?)(?:;|$)`)
	matmsgSubjectPattern = regexp.MustCompile(`SUB:(.*?)(?:;|$)`)
	matmsgBodyPattern    = regexp.MustCompile(`BODY:(.*?)(?:;|$)`)
)

// MAILTO:<address>?<query> (subject/body as query pairs) or
// MATMSG:TO:<addr>;SUB:<subject>;BODY:<body>;
func extractEmail(raw string) models.ParsedData {
	var e models.EmailData
	found := false

	if strings.HasPrefix(raw, "MAILTO:") {
		parts := strings.SplitN(raw[len("MAILTO:"):], "?", 2)
		e.To = parts[0]
		found = true
		if len(parts) > 1 {
			// malformed queries yield whatever pairs did parse
			params, _ := url.ParseQuery(parts[1])
			e.Subject = params.Get("subject")
			e.Body = params.Get("body")
		}
	} else if strings.HasPrefix(raw, "MATMSG:") {
		if v, ok := firstGroup(matmsgToPattern, raw); ok {
			e.To = v
			found = true
		}
		if v, ok := firstGroup(matmsgSubjectPattern, raw); ok {
			e.Subject = v
			found = true
		}
		if v, ok := firstGroup(matmsgBodyPattern, raw); ok {
			e.Body = v
			found = true
		}
	}

	if !found {
		return nil
	}
	return e
}
