package extract

import (
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

// GEO:<lat>,<lon> — both coordinates default to "0" when fewer than two
// comma-separated parts are present
func extractGeo(raw string) models.ParsedData {
	g := models.GeoData{Latitude: "0", Longitude: "0"}

	coords := strings.Split(strings.TrimPrefix(raw, "GEO:"), ",")
	if len(coords) >= 2 {
		g.Latitude = coords[0]
		g.Longitude = coords[1]
	}
	return g
}
