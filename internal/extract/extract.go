// Package extract turns a classified payload into its structured fields.
// Extraction is field-oriented: every field is located independently by a
// delimiter-bounded pattern, a missing field simply stays absent, and no
// input ever produces an error.
package extract

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/digimosa/qrscan/internal/classify"
	"github.com/digimosa/qrscan/internal/models"
)

// Parse runs the full pipeline for one payload: classify, extract and
// assemble the immutable ScanResult. RawData is stored verbatim.
func Parse(raw string) models.ScanResult {
	t := classify.Classify(raw)
	parsed := Extract(raw, t)
	return models.ScanResult{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UnixMilli(),
		DataType:    t,
		RawData:     raw,
		DisplayData: Display(t, parsed, raw),
		Parsed:      parsed,
	}
}

// Extract parses the fields relevant to the given type. The result is nil
// for TEXT and URL, and for any payload where no field could be located
// (GEO excepted, which always carries both coordinates).
func Extract(raw string, t models.PayloadType) models.ParsedData {
	switch t {
	case models.TypeWifi:
		return extractWifi(raw)
	case models.TypeContact:
		return extractContact(raw)
	case models.TypeSMS:
		return extractSMS(raw)
	case models.TypeEmail:
		return extractEmail(raw)
	case models.TypeGeo:
		return extractGeo(raw)
	default:
		return nil
	}
}

// Display derives the short human-readable summary for a result. It depends
// only on the type and the extracted fields, so it is computed once at
// creation and never recomputed.
func Display(t models.PayloadType, parsed models.ParsedData, raw string) string {
	switch t {
	case models.TypeWifi:
		ssid := "Unknown"
		if w, ok := parsed.(models.WifiData); ok && w.SSID != "" {
			ssid = w.SSID
		}
		return "Network: " + ssid
	case models.TypeContact:
		if c, ok := parsed.(models.ContactData); ok && c.Name != "" {
			return c.Name
		}
		return "Contact"
	case models.TypeSMS:
		number := "Unknown"
		if s, ok := parsed.(models.SMSData); ok && s.Number != "" {
			number = s.Number
		}
		return "SMS to: " + number
	case models.TypeEmail:
		to := "Unknown"
		if e, ok := parsed.(models.EmailData); ok && e.To != "" {
			to = e.To
		}
		return "Email to: " + to
	case models.TypeGeo:
		g, ok := parsed.(models.GeoData)
		if !ok {
			g = models.GeoData{Latitude: "0", Longitude: "0"}
		}
		return "Location: " + g.Latitude + ", " + g.Longitude
	default:
		// URL and TEXT show the payload verbatim
		return raw
	}
}

// firstGroup returns the first capture group of the first match, plus
// whether the pattern matched at all.
func firstGroup(p *regexp.Regexp, raw string) (string, bool) {
	m := p.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}
