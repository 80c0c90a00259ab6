package extract

import (
	"regexp"
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

// vCard fields are line-oriented; TEL/EMAIL/ADR may carry type parameters
// between the key and the colon (TEL;TYPE=CELL:...)
var (
	vcardNamePattern    = regexp.MustCompile(`FN:(.*?)(?:\r\n|\r|\n)`)
	vcardPhonePattern   = regexp.MustCompile(`TEL[^:]*:(.*?)(?:\r\n|\r|\n)`)
	vcardEmailPattern   = regexp.MustCompile(`EMAIL[^:]*:(.*?)(?:\r\n|\r|\n)`)
	vcardAddressPattern = regexp.MustCompile(`ADR[^:]*:(.*?)(?:\r\n|\r|\n)`)
	vcardCompanyPattern = regexp.MustCompile(`ORG:(.*?)(?:\r\n|\r|\n)`)
	vcardTitlePattern   = regexp.MustCompile(`TITLE:(.*?)(?:\r\n|\r|\n)`)
	vcardURLPattern     = regexp.MustCompile(`URL:(.*?)(?:\r\n|\r|\n)`)
	vcardNotePattern    = regexp.MustCompile(`NOTE:(.*?)(?:\r\n|\r|\n)`)
)

// MeCard fields are ';'-terminated
var (
	mecardNamePattern    = regexp.MustCompile(`N:(.*?)(?:;|$)`)
	mecardPhonePattern   = regexp.MustCompile(`TEL:(.*?)(?:;|$)`)
	mecardEmailPattern   = regexp.MustCompile(`EMAIL:(.*?)(?:;|$)`)
	mecardAddressPattern = regexp.MustCompile(`ADR:(.*?)(?:;|$)`)
	mecardCompanyPattern = regexp.MustCompile(`ORG:(.*?)(?:;|$)`)
	mecardTitlePattern   = regexp.MustCompile(`TITLE:(.*?)(?:;|$)`)
	mecardURLPattern     = regexp.MustCompile(`URL:(.*?)(?:;|$)`)
	mecardNotePattern    = regexp.MustCompile(`NOTE:(.*?)(?:;|$)`)
)

type contactField struct {
	pattern *regexp.Regexp
	assign  func(*models.ContactData, string)
}

var vcardFields = []contactField{
	{vcardNamePattern, func(c *models.ContactData, v string) { c.Name = v }},
	{vcardPhonePattern, func(c *models.ContactData, v string) { c.Phone = v }},
	{vcardEmailPattern, func(c *models.ContactData, v string) { c.Email = v }},
	{vcardAddressPattern, func(c *models.ContactData, v string) { c.Address = v }},
	{vcardCompanyPattern, func(c *models.ContactData, v string) { c.Company = v }},
	{vcardTitlePattern, func(c *models.ContactData, v string) { c.Title = v }},
	{vcardURLPattern, func(c *models.ContactData, v string) { c.URL = v }},
	{vcardNotePattern, func(c *models.ContactData, v string) { c.Note = v }},
}

var mecardFields = []contactField{
	{mecardNamePattern, func(c *models.ContactData, v string) { c.Name = v }},
	{mecardPhonePattern, func(c *models.ContactData, v string) { c.Phone = v }},
	{mecardEmailPattern, func(c *models.ContactData, v string) { c.Email = v }},
	{mecardAddressPattern, func(c *models.ContactData, v string) { c.Address = v }},
	{mecardCompanyPattern, func(c *models.ContactData, v string) { c.Company = v }},
	{mecardTitlePattern, func(c *models.ContactData, v string) { c.Title = v }},
	{mecardURLPattern, func(c *models.ContactData, v string) { c.URL = v }},
	{mecardNotePattern, func(c *models.ContactData, v string) { c.Note = v }},
}

func extractContact(raw string) models.ParsedData {
	fields := mecardFields
	if strings.HasPrefix(raw, "BEGIN:VCARD") {
		fields = vcardFields
	}

	var c models.ContactData
	found := false
	for _, f := range fields {
		if v, ok := firstGroup(f.pattern, raw); ok {
			f.assign(&c, v)
			found = true
		}
	}

	if !found {
		return nil
	}
	return c
}
