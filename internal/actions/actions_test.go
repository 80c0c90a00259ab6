package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimosa/qrscan/internal/models"
)

func labels(list []Action) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Label
	}
	return out
}

func TestActionsFor_Ordering(t *testing.T) {
	tests := []struct {
		name string
		res  models.ScanResult
		want []string
	}{
		{
			"url",
			models.ScanResult{DataType: models.TypeURL, RawData: "https://example.com"},
			[]string{"Open URL", "Copy to Clipboard"},
		},
		{
			"wifi without password",
			models.ScanResult{DataType: models.TypeWifi, Parsed: models.WifiData{SSID: "HomeNet"}},
			[]string{"Connect to Wi-Fi", "Copy to Clipboard"},
		},
		{
			"wifi with password",
			models.ScanResult{DataType: models.TypeWifi, Parsed: models.WifiData{SSID: "HomeNet", Password: "secret123"}},
			[]string{"Connect to Wi-Fi", "Copy to Clipboard", "Copy Password"},
		},
		{
			"contact with phone and email",
			models.ScanResult{DataType: models.TypeContact, Parsed: models.ContactData{Name: "Jane", Phone: "555", Email: "jane@x.com"}},
			[]string{"Add to Contacts", "Copy to Clipboard", "Call", "Send Email"},
		},
		{
			"contact without phone",
			models.ScanResult{DataType: models.TypeContact, Parsed: models.ContactData{Name: "Jane", Email: "jane@x.com"}},
			[]string{"Add to Contacts", "Copy to Clipboard", "Send Email"},
		},
		{
			"sms with number",
			models.ScanResult{DataType: models.TypeSMS, Parsed: models.SMSData{Number: "555"}},
			[]string{"Send SMS", "Copy to Clipboard", "Call"},
		},
		{
			"sms without number",
			models.ScanResult{DataType: models.TypeSMS, Parsed: models.SMSData{Message: "hi"}},
			[]string{"Copy to Clipboard"},
		},
		{
			"email with recipient",
			models.ScanResult{DataType: models.TypeEmail, Parsed: models.EmailData{To: "jane@x.com"}},
			[]string{"Send Email", "Copy to Clipboard"},
		},
		{
			"email without recipient",
			models.ScanResult{DataType: models.TypeEmail, Parsed: models.EmailData{Subject: "hi"}},
			[]string{"Copy to Clipboard"},
		},
		{
			"geo",
			models.ScanResult{DataType: models.TypeGeo, Parsed: models.GeoData{Latitude: "1.5", Longitude: "2.5"}},
			[]string{"Open in Maps", "Copy to Clipboard"},
		},
		{
			"text",
			models.ScanResult{DataType: models.TypeText, RawData: "just some plain text"},
			[]string{"Share Text", "Copy to Clipboard"},
		},
		{
			"wifi with nil parsed",
			models.ScanResult{DataType: models.TypeWifi, RawData: "WIFI:"},
			[]string{"Copy to Clipboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(ActionsFor(tt.res)))
		})
	}
}

func TestActionsFor_Deterministic(t *testing.T) {
	res := models.ScanResult{
		DataType: models.TypeContact,
		RawData:  "MECARD:N:Jane;TEL:555;EMAIL:jane@x.com;;",
		Parsed:   models.ContactData{Name: "Jane", Phone: "555", Email: "jane@x.com"},
	}

	first := ActionsFor(res)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ActionsFor(res))
	}
}

func TestActionsFor_DismissFlags(t *testing.T) {
	res := models.ScanResult{
		DataType: models.TypeWifi,
		Parsed:   models.WifiData{SSID: "HomeNet", Password: "secret123"},
	}
	list := ActionsFor(res)
	require.Len(t, list, 3)

	// connecting shows credentials and keeps the surface open; the copy
	// actions dismiss it
	assert.False(t, list[0].DismissAfter)
	assert.True(t, list[1].DismissAfter)
	assert.True(t, list[2].DismissAfter)
}

func TestActionsFor_Parameters(t *testing.T) {
	res := models.ScanResult{
		DataType: models.TypeSMS,
		RawData:  "SMSTO:555:running late",
		Parsed:   models.SMSData{Number: "555", Message: "running late"},
	}
	list := ActionsFor(res)
	require.Len(t, list, 3)

	assert.Equal(t, OpSendSMS, list[0].Op)
	assert.Equal(t, "555", list[0].Target)
	assert.Equal(t, "running late", list[0].Body)
	assert.Equal(t, OpCopy, list[1].Op)
	assert.Equal(t, res.RawData, list[1].Target)
	assert.Equal(t, OpCall, list[2].Op)
	assert.Equal(t, "555", list[2].Target)
}

func TestFind(t *testing.T) {
	res := models.ScanResult{DataType: models.TypeURL, RawData: "https://example.com"}

	a, ok := Find(res, OpOpenURL)
	assert.True(t, ok)
	assert.Equal(t, "Open URL", a.Label)

	_, ok = Find(res, OpCall)
	assert.False(t, ok)
}
