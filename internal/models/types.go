package models

// PayloadType identifies the semantic type of a scanned QR payload
type PayloadType string

const (
	TypeURL     PayloadType = "URL"
	TypeText    PayloadType = "TEXT"
	TypeWifi    PayloadType = "WIFI"
	TypeContact PayloadType = "CONTACT"
	TypeSMS     PayloadType = "SMS"
	TypeEmail   PayloadType = "EMAIL"
	TypeGeo     PayloadType = "GEO"
	TypeUnknown PayloadType = "UNKNOWN"
)

// ScanResult is the record produced for a single scanned payload.
// RawData is the untouched payload string and stays the source of truth
// for every follow-up action; Parsed carries the per-type variant or nil.
// A ScanResult is built once by extract.Parse and never edited afterwards.
type ScanResult struct {
	ID          string      `json:"id"`
	Timestamp   int64       `json:"timestamp"` // milliseconds since epoch
	DataType    PayloadType `json:"dataType"`
	RawData     string      `json:"rawData"`
	DisplayData string      `json:"displayData"`
	Parsed      ParsedData  `json:"parsedData,omitempty"`
}

// ParsedData is the tagged union of per-type extraction results.
// Consumers switch on ScanResult.DataType first; the variant shape is
// never inspected to infer the type.
type ParsedData interface {
	PayloadType() PayloadType
}

// WifiData holds fields extracted from a WIFI: payload
type WifiData struct {
	SSID     string `json:"ssid,omitempty"`
	Password string `json:"password,omitempty"`
	Type     string `json:"type,omitempty"`
	Hidden   bool   `json:"hidden"`
}

func (WifiData) PayloadType() PayloadType { return TypeWifi }

// ContactData holds fields extracted from a vCard or MeCard payload
type ContactData struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Note    string `json:"note,omitempty"`
}

func (ContactData) PayloadType() PayloadType { return TypeContact }

// SMSData holds fields extracted from an SMSTO:/SMS: payload
type SMSData struct {
	Number  string `json:"number,omitempty"`
	Message string `json:"message,omitempty"`
}

func (SMSData) PayloadType() PayloadType { return TypeSMS }

// EmailData holds fields extracted from a MAILTO:/MATMSG: payload
type EmailData struct {
	To      string `json:"to,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

func (EmailData) PayloadType() PayloadType { return TypeEmail }

// GeoData holds coordinates from a GEO: payload.
// Both fields are always set; "0" stands in for anything unparsable.
type GeoData struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

func (GeoData) PayloadType() PayloadType { return TypeGeo }

// Job represents a payload file queued for batch import
type Job struct {
	FilePath string
}

// ImportResult is the outcome of classifying one imported payload
type ImportResult struct {
	Result ScanResult
	Source string // file the payload came from
	Err    error
}
