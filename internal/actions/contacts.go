package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/digimosa/qrscan/internal/models"
)

// FileContactsStore persists inserted contacts as vCard files in a
// directory. It stands in for a platform contacts database; the directory
// being unset models the permission-denied case.
type FileContactsStore struct {
	dir string
}

func NewFileContactsStore(dir string) *FileContactsStore {
	return &FileContactsStore{dir: dir}
}

func (s *FileContactsStore) Capability() Permission {
	if s.dir == "" {
		return Denied
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Failed
	}
	return Granted
}

func (s *FileContactsStore) Insert(c models.ContactData) error {
	name := c.Name
	if name == "" {
		name = "Unknown"
	}

	var sb strings.Builder
	sb.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	sb.WriteString("FN:" + name + "\r\n")
	if c.Phone != "" {
		sb.WriteString("TEL:" + c.Phone + "\r\n")
	}
	if c.Email != "" {
		sb.WriteString("EMAIL:" + c.Email + "\r\n")
	}
	if c.Address != "" {
		sb.WriteString("ADR:" + c.Address + "\r\n")
	}
	if c.Company != "" {
		sb.WriteString("ORG:" + c.Company + "\r\n")
	}
	if c.Title != "" {
		sb.WriteString("TITLE:" + c.Title + "\r\n")
	}
	sb.WriteString("END:VCARD\r\n")

	filename := fmt.Sprintf("%s-%d.vcf", slugify(name), time.Now().UnixMilli())
	return os.WriteFile(filepath.Join(s.dir, filename), []byte(sb.String()), 0644)
}

func slugify(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteByte('-')
		}
	}
	if sb.Len() == 0 {
		return "contact"
	}
	return sb.String()
}
