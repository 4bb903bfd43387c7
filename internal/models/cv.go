package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SkillList is the canonical skill sequence. Upstream data shape is not
// guaranteed: the model (or a legacy row) may deliver skills as a JSON array
// or as one comma-separated string, so both decode paths normalize into a
// trimmed slice here at the boundary.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}

	if data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*s = normalizeSkills(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = normalizeSkills(strings.Split(raw, ","))
	return nil
}

// Value implements driver.Valuer so the list is stored as a JSON array.
func (s SkillList) Value() (driver.Value, error) {
	if s == nil {
		s = SkillList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner. Rows written by this service hold a JSON
// array; anything else is treated as comma-separated text.
func (s *SkillList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported skills column type %T", value)
	}

	if err := s.UnmarshalJSON(raw); err != nil {
		*s = normalizeSkills(strings.Split(string(raw), ","))
	}
	return nil
}

func normalizeSkills(items []string) SkillList {
	out := make(SkillList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParsedProfile is the structured result of CV field extraction. Missing
// keys in the model output simply leave their zero values in place.
type ParsedProfile struct {
	Skills     SkillList `json:"skills"`
	Experience string    `json:"experience"`
	Education  string    `json:"education"`
}

// UserCV is the one current profile per user, replaced on every re-upload.
type UserCV struct {
	UserID     string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	Skills     SkillList `gorm:"type:jsonb" json:"skills"`
	Experience string    `gorm:"type:text" json:"experience"`
	Education  string    `gorm:"type:text" json:"education"`
	CVURL      string    `gorm:"column:cv_url;type:text" json:"cv_url"`
	ParsedAt   time.Time `gorm:"column:parsed_at" json:"parsed_at"`
}

func (UserCV) TableName() string {
	return "user_cvs"
}
