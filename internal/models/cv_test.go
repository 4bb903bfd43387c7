package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkillListUnmarshalArray(t *testing.T) {
	var skills SkillList
	if err := json.Unmarshal([]byte(`[" Go ", "SQL", "", "Docker"]`), &skills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual([]string(skills), []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestSkillListUnmarshalCommaString(t *testing.T) {
	var skills SkillList
	if err := json.Unmarshal([]byte(`"Go, SQL,Docker , "`), &skills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual([]string(skills), []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestSkillListUnmarshalNull(t *testing.T) {
	var skills SkillList
	if err := json.Unmarshal([]byte(`null`), &skills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skills != nil {
		t.Fatalf("expected nil, got %v", skills)
	}
}

func TestSkillListScan(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{"json array bytes", []byte(`["Go","SQL"]`), []string{"Go", "SQL"}},
		{"json array string", `["Go"]`, []string{"Go"}},
		{"legacy comma text", []byte(`Go, SQL`), []string{"Go", "SQL"}},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var skills SkillList
			if err := skills.Scan(tc.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual([]string(skills), tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, skills)
			}
		})
	}
}

func TestSkillListValue(t *testing.T) {
	var nilSkills SkillList
	value, err := nilSkills.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Fatalf("nil list must serialize as an empty array, got %s", value)
	}
}
