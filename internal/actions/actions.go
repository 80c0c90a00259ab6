// Package actions resolves the follow-up actions for a classified scan
// result and executes them against the platform collaborators.
//
// An Action is a pure descriptor (operation + parameters), never a
// closure: the resolver decides which actions exist and in what order,
// and the Executor performs the actual I/O.
package actions

import (
	"github.com/digimosa/qrscan/internal/models"
)

// Op enumerates the executable operations
type Op string

const (
	OpCopy         Op = "copy"
	OpCopyPassword Op = "copy-password"
	OpOpenURL      Op = "open-url"
	OpConnectWifi  Op = "connect-wifi"
	OpAddContact   Op = "add-contact"
	OpCall         Op = "call"
	OpSendSMS      Op = "send-sms"
	OpSendEmail    Op = "send-email"
	OpOpenMaps     Op = "open-maps"
	OpShareText    Op = "share-text"
)

// Action describes one user-invokable follow-up operation. Target carries
// the primary parameter (URL, number, address, password, "lat,lon");
// Subject and Body are only used by the messaging ops. DismissAfter tells
// the presenting surface to close once the effect ran.
type Action struct {
	Op           Op     `json:"op"`
	Icon         string `json:"icon"`
	Label        string `json:"label"`
	Target       string `json:"target,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Body         string `json:"body,omitempty"`
	DismissAfter bool   `json:"dismissAfter"`
}

// ActionsFor returns the ordered action list for a result. The universal
// copy action is always present; the type's primary action is prepended
// so it renders first, secondaries are appended after copy. Actions whose
// parameter is absent are omitted entirely, never rendered disabled.
// The list is computed fresh on every call and is deterministic for a
// fixed result.
func ActionsFor(res models.ScanResult) []Action {
	list := []Action{{
		Op:           OpCopy,
		Icon:         "copy-outline",
		Label:        "Copy to Clipboard",
		Target:       res.RawData,
		DismissAfter: true,
	}}

	prepend := func(a Action) { list = append([]Action{a}, list...) }

	switch res.DataType {
	case models.TypeURL:
		prepend(Action{
			Op:           OpOpenURL,
			Icon:         "open-outline",
			Label:        "Open URL",
			Target:       res.RawData,
			DismissAfter: true,
		})

	case models.TypeWifi:
		w, ok := res.Parsed.(models.WifiData)
		if !ok {
			break
		}
		prepend(Action{
			Op:     OpConnectWifi,
			Icon:   "wifi-outline",
			Label:  "Connect to Wi-Fi",
			Target: w.SSID,
		})
		if w.Password != "" {
			list = append(list, Action{
				Op:           OpCopyPassword,
				Icon:         "key-outline",
				Label:        "Copy Password",
				Target:       w.Password,
				DismissAfter: true,
			})
		}

	case models.TypeContact:
		c, ok := res.Parsed.(models.ContactData)
		if !ok {
			break
		}
		prepend(Action{
			Op:           OpAddContact,
			Icon:         "person-add-outline",
			Label:        "Add to Contacts",
			DismissAfter: true,
		})
		if c.Phone != "" {
			list = append(list, Action{
				Op:           OpCall,
				Icon:         "call-outline",
				Label:        "Call",
				Target:       c.Phone,
				DismissAfter: true,
			})
		}
		if c.Email != "" {
			list = append(list, Action{
				Op:           OpSendEmail,
				Icon:         "mail-outline",
				Label:        "Send Email",
				Target:       c.Email,
				DismissAfter: true,
			})
		}

	case models.TypeSMS:
		s, ok := res.Parsed.(models.SMSData)
		if !ok || s.Number == "" {
			break
		}
		prepend(Action{
			Op:           OpSendSMS,
			Icon:         "chatbox-outline",
			Label:        "Send SMS",
			Target:       s.Number,
			Body:         s.Message,
			DismissAfter: true,
		})
		list = append(list, Action{
			Op:           OpCall,
			Icon:         "call-outline",
			Label:        "Call",
			Target:       s.Number,
			DismissAfter: true,
		})

	case models.TypeEmail:
		e, ok := res.Parsed.(models.EmailData)
		if !ok || e.To == "" {
			break
		}
		prepend(Action{
			Op:           OpSendEmail,
			Icon:         "mail-outline",
			Label:        "Send Email",
			Target:       e.To,
			Subject:      e.Subject,
			Body:         e.Body,
			DismissAfter: true,
		})

	case models.TypeGeo:
		g, ok := res.Parsed.(models.GeoData)
		if !ok {
			break
		}
		prepend(Action{
			Op:           OpOpenMaps,
			Icon:         "map-outline",
			Label:        "Open in Maps",
			Target:       g.Latitude + "," + g.Longitude,
			DismissAfter: true,
		})

	case models.TypeText:
		prepend(Action{
			Op:           OpShareText,
			Icon:         "share-outline",
			Label:        "Share Text",
			Target:       res.RawData,
			DismissAfter: true,
		})
	}

	return list
}

// Find returns the action with the given op from a result's resolved
// list, for invoking a specific op by name (HTTP surface).
func Find(res models.ScanResult, op Op) (Action, bool) {
	for _, a := range ActionsFor(res) {
		if a.Op == op {
			return a, true
		}
	}
	return Action{}, false
}
