package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

func writeTableFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTablesDefaults(t *testing.T) {
	tables, err := LoadTables(EngineConfig{})
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if len(tables.Lexicon[emotion.Joy]) == 0 {
		t.Fatal("default lexicon missing joy entries")
	}
	if tables.Opposites[emotion.Joy] != emotion.Sadness {
		t.Fatalf("unexpected default opposite %s", tables.Opposites[emotion.Joy])
	}
	if len(tables.Bank[emotion.Neutral][emotion.Default]) == 0 {
		t.Fatal("default bank missing neutral templates")
	}
}

func TestLoadTablesLexiconOverride(t *testing.T) {
	path := writeTableFile(t, "lexicon.yaml", `
categories:
  joy:
    - keyword: jubilant
      weight: 1.5
  sadness:
    - keyword: sad
      weight: 1.0
  anger:
    - keyword: angry
      weight: 1.0
  fear:
    - keyword: worried
      weight: 1.0
  surprise:
    - keyword: shocked
      weight: 1.0
  disgust:
    - keyword: gross
      weight: 1.0
  neutral:
    - keyword: okay
      weight: 0.5
opposites:
  joy: neutral
`)

	tables, err := LoadTables(EngineConfig{LexiconPath: path})
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	entries := tables.Lexicon[emotion.Joy]
	if len(entries) != 1 || entries[0].Keyword != "jubilant" || entries[0].Weight != 1.5 {
		t.Fatalf("lexicon override not applied: %v", entries)
	}
	if tables.Opposites[emotion.Joy] != emotion.Neutral {
		t.Fatalf("opposites override not applied: %s", tables.Opposites[emotion.Joy])
	}
	// Categories untouched by the override keep their default opposite.
	if tables.Opposites[emotion.Sadness] != emotion.Joy {
		t.Fatalf("unexpected sadness opposite %s", tables.Opposites[emotion.Sadness])
	}
}

func TestLoadTablesLexiconUnknownCategory(t *testing.T) {
	path := writeTableFile(t, "lexicon.yaml", `
categories:
  confusion:
    - keyword: puzzled
      weight: 1.0
`)
	if _, err := LoadTables(EngineConfig{LexiconPath: path}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoadTablesLexiconInvalidWeight(t *testing.T) {
	path := writeTableFile(t, "lexicon.yaml", `
categories:
  joy:
    - keyword: happy
      weight: -1.0
  sadness:
    - keyword: sad
      weight: 1.0
  anger:
    - keyword: angry
      weight: 1.0
  fear:
    - keyword: worried
      weight: 1.0
  surprise:
    - keyword: shocked
      weight: 1.0
  disgust:
    - keyword: gross
      weight: 1.0
  neutral:
    - keyword: okay
      weight: 0.5
`)
	if _, err := LoadTables(EngineConfig{LexiconPath: path}); err == nil {
		t.Fatal("expected validation error for non-positive weight")
	}
}

func TestLoadTablesFactorsOverride(t *testing.T) {
	path := writeTableFile(t, "factors.yaml", `
western:
  joy: 2.0
eastern:
  joy: 0.5
default:
  joy: 1.0
`)

	tables, err := LoadTables(EngineConfig{FactorsPath: path})
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if tables.Factors[emotion.Western][emotion.Joy] != 2.0 {
		t.Fatalf("factors override not applied: %v", tables.Factors[emotion.Western])
	}
}

func TestLoadTablesFactorsUnknownContext(t *testing.T) {
	path := writeTableFile(t, "factors.yaml", `
martian:
  joy: 1.0
`)
	if _, err := LoadTables(EngineConfig{FactorsPath: path}); err == nil {
		t.Fatal("expected error for unknown context")
	}
}

func TestLoadTablesFactorsMissingContext(t *testing.T) {
	path := writeTableFile(t, "factors.yaml", `
western:
  joy: 1.2
`)
	if _, err := LoadTables(EngineConfig{FactorsPath: path}); err == nil {
		t.Fatal("expected validation error for missing contexts")
	}
}

func TestLoadTablesFollowUpOverride(t *testing.T) {
	path := writeTableFile(t, "templates.yaml", `
followups:
  joy:
    - "What made this moment special?"
`)

	tables, err := LoadTables(EngineConfig{TemplatesPath: path})
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if len(tables.FollowUps[emotion.Joy]) != 1 {
		t.Fatalf("follow-up override not applied: %v", tables.FollowUps[emotion.Joy])
	}
	// The template bank itself was not overridden and keeps the defaults.
	if len(tables.Bank[emotion.Joy][emotion.Western]) == 0 {
		t.Fatal("default bank lost during follow-up override")
	}
}

func TestLoadTablesIncompleteBankFailsFast(t *testing.T) {
	path := writeTableFile(t, "templates.yaml", `
templates:
  joy:
    default:
      - "only joy has templates"
`)
	if _, err := LoadTables(EngineConfig{TemplatesPath: path}); err == nil {
		t.Fatal("expected validation error for incomplete template bank")
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables(EngineConfig{LexiconPath: "/nonexistent/lexicon.yaml"}); err == nil {
		t.Fatal("expected error for missing override file")
	}
}
