package question

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinBank(t *testing.T) {
	b := BuiltinBank()
	if b.Len() == 0 {
		t.Fatal("builtin bank is empty")
	}
	for _, q := range b.Questions() {
		if q.ID == "" || q.Prompt == "" {
			t.Errorf("builtin question %+v missing id or prompt", q)
		}
	}
}

func TestNewBankRejectsInvalid(t *testing.T) {
	if _, err := NewBank(nil); err == nil {
		t.Error("empty bank should be rejected")
	}
	if _, err := NewBank([]Question{{ID: "", Prompt: "p"}}); err == nil {
		t.Error("missing id should be rejected")
	}
	if _, err := NewBank([]Question{{ID: "a", Prompt: ""}}); err == nil {
		t.Error("missing prompt should be rejected")
	}
	dupes := []Question{
		{ID: "a", Prompt: "first"},
		{ID: "a", Prompt: "second"},
	}
	if _, err := NewBank(dupes); err == nil {
		t.Error("duplicate ids should be rejected")
	}
}

func TestGetAndFilter(t *testing.T) {
	b := BuiltinBank()

	q := b.Get(b.Questions()[0].ID)
	if q == nil {
		t.Fatal("expected to find first question by id")
	}
	if q.Prompt == "" {
		t.Error("found question has no prompt")
	}

	if b.Get("nope") != nil {
		t.Error("unknown id should not be found")
	}

	behavioral := b.FilterByType(TypeBehavioral)
	for _, q := range behavioral {
		if q.Type != TypeBehavioral {
			t.Errorf("filter returned %s question", q.Type)
		}
	}
}

func TestLoadBank(t *testing.T) {
	questions := []Question{
		{ID: "custom-1", Prompt: "Why this company?", Type: TypeBehavioral, Difficulty: DifficultyEasy},
		{ID: "custom-2", Prompt: "Reverse a linked list.", Type: TypeCoding, Difficulty: DifficultyMedium, Hints: []string{"draw it"}},
	}
	data, err := json.Marshal(questions)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("len = %d, want 2", b.Len())
	}
	q := b.Get("custom-2")
	if q == nil || q.HintCount() != 1 {
		t.Errorf("custom-2 = %+v", q)
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	if _, err := LoadBank(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
