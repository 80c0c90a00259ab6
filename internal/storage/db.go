package storage

import (
	"encoding/json"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/digimosa/qrscan/internal/models"
)

// ScanRecord is the persisted form of a ScanResult. The parsed variant is
// stored as a JSON column and rehydrated by switching on DataType, so the
// record round-trips without loosening the tagged union.
type ScanRecord struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Timestamp   int64  `gorm:"index" json:"timestamp"`
	DataType    string `json:"data_type"`
	RawData     string `json:"raw_data"`
	DisplayData string `json:"display_data"`
	ParsedJSON  string `json:"parsed_json,omitempty"`
}

// Global DB instance
var DB *gorm.DB

func Init(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	return DB.AutoMigrate(&ScanRecord{})
}

// Save persists a result. Records are whole-row immutable: they are
// inserted once and only ever deleted, never updated.
func Save(res models.ScanResult) error {
	rec, err := toRecord(res)
	if err != nil {
		return err
	}
	return DB.Create(&rec).Error
}

// List returns stored results newest first. limit <= 0 means no limit.
func List(limit int) ([]models.ScanResult, error) {
	var recs []ScanRecord
	q := DB.Order("timestamp desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]models.ScanResult, 0, len(recs))
	for _, rec := range recs {
		res, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func Get(id string) (models.ScanResult, error) {
	var rec ScanRecord
	if err := DB.First(&rec, "id = ?", id).Error; err != nil {
		return models.ScanResult{}, err
	}
	return fromRecord(rec)
}

func Delete(id string) error {
	return DB.Delete(&ScanRecord{}, "id = ?", id).Error
}

func Clear() error {
	return DB.Where("1 = 1").Delete(&ScanRecord{}).Error
}

// Prune deletes the oldest records beyond limit. A limit <= 0 disables
// pruning.
func Prune(limit int) error {
	if limit <= 0 {
		return nil
	}
	var ids []string
	err := DB.Model(&ScanRecord{}).
		Order("timestamp desc").
		Offset(limit).
		Limit(-1).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return err
	}
	return DB.Delete(&ScanRecord{}, "id IN ?", ids).Error
}

func Count() (int64, error) {
	var n int64
	err := DB.Model(&ScanRecord{}).Count(&n).Error
	return n, err
}

func toRecord(res models.ScanResult) (ScanRecord, error) {
	rec := ScanRecord{
		ID:          res.ID,
		Timestamp:   res.Timestamp,
		DataType:    string(res.DataType),
		RawData:     res.RawData,
		DisplayData: res.DisplayData,
	}
	if res.Parsed != nil {
		b, err := json.Marshal(res.Parsed)
		if err != nil {
			return ScanRecord{}, err
		}
		rec.ParsedJSON = string(b)
	}
	return rec, nil
}

func fromRecord(rec ScanRecord) (models.ScanResult, error) {
	res := models.ScanResult{
		ID:          rec.ID,
		Timestamp:   rec.Timestamp,
		DataType:    models.PayloadType(rec.DataType),
		RawData:     rec.RawData,
		DisplayData: rec.DisplayData,
	}
	if rec.ParsedJSON == "" {
		return res, nil
	}

	data := []byte(rec.ParsedJSON)
	switch res.DataType {
	case models.TypeWifi:
		var w models.WifiData
		if err := json.Unmarshal(data, &w); err != nil {
			return models.ScanResult{}, err
		}
		res.Parsed = w
	case models.TypeContact:
		var c models.ContactData
		if err := json.Unmarshal(data, &c); err != nil {
			return models.ScanResult{}, err
		}
		res.Parsed = c
	case models.TypeSMS:
		var s models.SMSData
		if err := json.Unmarshal(data, &s); err != nil {
			return models.ScanResult{}, err
		}
		res.Parsed = s
	case models.TypeEmail:
		var e models.EmailData
		if err := json.Unmarshal(data, &e); err != nil {
			return models.ScanResult{}, err
		}
		res.Parsed = e
	case models.TypeGeo:
		var g models.GeoData
		if err := json.Unmarshal(data, &g); err != nil {
			return models.ScanResult{}, err
		}
		res.Parsed = g
	}
	return res, nil
}
