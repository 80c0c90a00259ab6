package actions

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/digimosa/qrscan/internal/models"
)

// Clipboard is the system clipboard collaborator
type Clipboard interface {
	Write(text string) error
}

// Launcher hands a URI off to the platform opener (browser, dialer,
// mail client, maps — whatever the OS has registered for the scheme)
type Launcher interface {
	OpenURI(uri string) error
}

// Permission is the typed outcome of a capability check
type Permission int

const (
	Granted Permission = iota
	Denied
	Failed
)

// ContactsStore is the contacts collaborator. Capability is checked
// explicitly before every insert; the executor never prompts inline.
type ContactsStore interface {
	Capability() Permission
	Insert(c models.ContactData) error
}

// Executor performs the platform I/O for action descriptors. Each call is
// one user tap: no retry, no queueing, and a failure never touches the
// stored result.
type Executor struct {
	clip     Clipboard
	launcher Launcher
	contacts ContactsStore
}

func NewExecutor(clip Clipboard, launcher Launcher, contacts ContactsStore) *Executor {
	return &Executor{clip: clip, launcher: launcher, contacts: contacts}
}

// NewSystemExecutor wires the real collaborators: the OS clipboard, the
// OS URI opener and a vCard file drop for contact inserts.
func NewSystemExecutor(contactsDir string) *Executor {
	return NewExecutor(systemClipboard{}, systemLauncher{}, NewFileContactsStore(contactsDir))
}

// Execute runs one descriptor against the collaborators. The returned
// string is a short notice for the user; errors are generic and
// non-fatal.
func (e *Executor) Execute(a Action, res models.ScanResult) (string, error) {
	switch a.Op {
	case OpCopy:
		if err := e.clip.Write(res.RawData); err != nil {
			return "", fmt.Errorf("could not copy to clipboard: %w", err)
		}
		return "Content copied to clipboard", nil

	case OpCopyPassword:
		if err := e.clip.Write(a.Target); err != nil {
			return "", fmt.Errorf("could not copy to clipboard: %w", err)
		}
		return "Password copied to clipboard", nil

	case OpOpenURL:
		if err := e.launcher.OpenURI(res.RawData); err != nil {
			return "", fmt.Errorf("could not open URL: %w", err)
		}
		return "Opened URL", nil

	case OpConnectWifi:
		// No portable join API; surface the credentials instead, the way
		// the scan surface presents them.
		w, _ := res.Parsed.(models.WifiData)
		ssid, pass, sec := w.SSID, w.Password, w.Type
		if ssid == "" {
			ssid = "Unknown"
		}
		if pass == "" {
			pass = "None"
		}
		if sec == "" {
			sec = "Unknown"
		}
		return fmt.Sprintf("Network: %s\nPassword: %s\nType: %s", ssid, pass, sec), nil

	case OpAddContact:
		switch e.contacts.Capability() {
		case Denied:
			return "", fmt.Errorf("contact permission is required to add contacts")
		case Failed:
			return "", fmt.Errorf("could not access contacts store")
		}
		c, _ := res.Parsed.(models.ContactData)
		if err := e.contacts.Insert(c); err != nil {
			return "", fmt.Errorf("could not add contact: %w", err)
		}
		return "Contact added successfully", nil

	case OpCall:
		if err := e.launcher.OpenURI("tel:" + a.Target); err != nil {
			return "", fmt.Errorf("could not make call: %w", err)
		}
		return "Calling " + a.Target, nil

	case OpSendSMS:
		uri := "sms:" + a.Target
		if a.Body != "" {
			uri += "?body=" + url.QueryEscape(a.Body)
		}
		if err := e.launcher.OpenURI(uri); err != nil {
			return "", fmt.Errorf("could not open SMS: %w", err)
		}
		return "Opened SMS composer", nil

	case OpSendEmail:
		if err := e.launcher.OpenURI(BuildMailtoURI(a.Target, a.Subject, a.Body)); err != nil {
			return "", fmt.Errorf("could not open email: %w", err)
		}
		return "Opened email composer", nil

	case OpOpenMaps:
		if err := e.launcher.OpenURI("geo:" + a.Target + "?q=" + a.Target); err != nil {
			// fall back to a maps URL the browser can handle
			if err := e.launcher.OpenURI("https://maps.google.com/maps?q=" + a.Target); err != nil {
				return "", fmt.Errorf("could not open maps: %w", err)
			}
		}
		return "Opened location in maps", nil

	case OpShareText:
		if err := e.launcher.OpenURI("sms:?body=" + url.QueryEscape(res.RawData)); err != nil {
			return "", fmt.Errorf("could not share text: %w", err)
		}
		return "Opened share composer", nil
	}

	return "", fmt.Errorf("unknown action op: %s", a.Op)
}

// BuildMailtoURI constructs a properly encoded mailto: URI
func BuildMailtoURI(to, subject, body string) string {
	uri := "mailto:" + to
	sep := "?"
	if subject != "" {
		uri += sep + "subject=" + url.QueryEscape(subject)
		sep = "&"
	}
	if body != "" {
		uri += sep + "body=" + url.QueryEscape(body)
	}
	return uri
}

type systemClipboard struct{}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

type systemLauncher struct{}

func (systemLauncher) OpenURI(uri string) error {
	return browser.OpenURL(uri)
}
