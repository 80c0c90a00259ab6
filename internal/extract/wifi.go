package extract

import (
	"regexp"

	"github.com/digimosa/qrscan/internal/models"
)

// WIFI: fields are key:value pairs terminated by ';' or end of string
var (
	wifiSSIDPattern   = regexp.MustCompile(`S:(.*?)(?:;|$)`)
	wifiPassPattern   = regexp.MustCompile(`P:(.*?)(?:;|$)`)
	wifiTypePattern   = regexp.MustCompile(`T:(.*?)(?:;|$)`)
	wifiHiddenPattern = regexp.MustCompile(`H:(.*?)(?:;|$)`)
)

func extractWifi(raw string) models.ParsedData {
	var w models.WifiData
	found := false

	if v, ok := firstGroup(wifiSSIDPattern, raw); ok {
		w.SSID = v
		found = true
	}
	if v, ok := firstGroup(wifiPassPattern, raw); ok {
		w.Password = v
		found = true
	}
	if v, ok := firstGroup(wifiTypePattern, raw); ok {
		w.Type = v
		found = true
	}
	if v, ok := firstGroup(wifiHiddenPattern, raw); ok {
		w.Hidden = v == "true"
		found = true
	}

	if !found {
		return nil
	}
	return w
}
