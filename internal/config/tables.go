package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/service/response"
)

// Tables bundles the static lookup tables of the engine: the lexicon, the
// negation opposites, the cultural factors and the response banks. Loaded and
// validated once at startup, then shared read-only.
type Tables struct {
	Lexicon   emotion.Lexicon
	Opposites map[emotion.Category]emotion.Category
	Factors   emotion.Factors
	Bank      response.Bank
	FollowUps response.FollowUps
}

// LoadTables resolves each table from its YAML override when a path is
// configured, otherwise from the compiled-in defaults, and validates the
// result. Any failure here is fatal: tables are never re-derived per message.
func LoadTables(cfg EngineConfig) (*Tables, error) {
	tables := &Tables{
		Lexicon:   emotion.DefaultLexicon(),
		Opposites: emotion.DefaultOpposites(),
		Factors:   emotion.DefaultFactors(),
		Bank:      response.DefaultBank(),
		FollowUps: response.DefaultFollowUps(),
	}

	if cfg.LexiconPath != "" {
		if err := tables.loadLexicon(cfg.LexiconPath); err != nil {
			return nil, fmt.Errorf("lexicon override %s: %w", cfg.LexiconPath, err)
		}
	}
	if cfg.FactorsPath != "" {
		if err := tables.loadFactors(cfg.FactorsPath); err != nil {
			return nil, fmt.Errorf("cultural factors override %s: %w", cfg.FactorsPath, err)
		}
	}
	if cfg.TemplatesPath != "" {
		if err := tables.loadTemplates(cfg.TemplatesPath); err != nil {
			return nil, fmt.Errorf("templates override %s: %w", cfg.TemplatesPath, err)
		}
	}

	if err := tables.Lexicon.Validate(); err != nil {
		return nil, err
	}
	if err := validateOpposites(tables.Opposites); err != nil {
		return nil, err
	}
	if err := tables.Factors.Validate(); err != nil {
		return nil, err
	}
	if err := tables.Bank.Validate(); err != nil {
		return nil, err
	}

	return tables, nil
}

type lexiconFile struct {
	Categories map[string][]struct {
		Keyword string  `yaml:"keyword"`
		Weight  float64 `yaml:"weight"`
	} `yaml:"categories"`
	Opposites map[string]string `yaml:"opposites"`
}

func (t *Tables) loadLexicon(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	if len(file.Categories) > 0 {
		lexicon := make(emotion.Lexicon, len(file.Categories))
		for name, entries := range file.Categories {
			category, ok := emotion.ParseCategory(name)
			if !ok {
				return fmt.Errorf("unknown category %q", name)
			}
			for _, e := range entries {
				lexicon[category] = append(lexicon[category], emotion.Entry{
					Keyword: e.Keyword,
					Weight:  e.Weight,
				})
			}
		}
		t.Lexicon = lexicon
	}

	if len(file.Opposites) > 0 {
		opposites := make(map[emotion.Category]emotion.Category, len(file.Opposites))
		for from, to := range file.Opposites {
			fromCategory, ok := emotion.ParseCategory(from)
			if !ok {
				return fmt.Errorf("unknown category %q in opposites", from)
			}
			toCategory, ok := emotion.ParseCategory(to)
			if !ok {
				return fmt.Errorf("unknown category %q in opposites", to)
			}
			opposites[fromCategory] = toCategory
		}
		t.Opposites = opposites
	}
	return nil
}

func (t *Tables) loadFactors(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file map[string]map[string]float64
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}
	if len(file) == 0 {
		return nil
	}

	factors := make(emotion.Factors, len(file))
	for ctxName, perCategory := range file {
		cultural, ok := emotion.ParseContext(ctxName)
		if !ok {
			return fmt.Errorf("unknown context %q", ctxName)
		}
		factors[cultural] = make(map[emotion.Category]float64, len(perCategory))
		for name, factor := range perCategory {
			category, ok := emotion.ParseCategory(name)
			if !ok {
				return fmt.Errorf("unknown category %q under context %q", name, ctxName)
			}
			factors[cultural][category] = factor
		}
	}
	t.Factors = factors
	return nil
}

type templatesFile struct {
	Templates map[string]map[string][]string `yaml:"templates"`
	FollowUps map[string][]string            `yaml:"followups"`
}

func (t *Tables) loadTemplates(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file templatesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	if len(file.Templates) > 0 {
		bank := make(response.Bank, len(file.Templates))
		for name, perContext := range file.Templates {
			category, ok := emotion.ParseCategory(name)
			if !ok {
				return fmt.Errorf("unknown category %q in templates", name)
			}
			bank[category] = make(map[emotion.Context][]string, len(perContext))
			for ctxName, templates := range perContext {
				cultural, ok := emotion.ParseContext(ctxName)
				if !ok {
					return fmt.Errorf("unknown context %q under category %q", ctxName, name)
				}
				bank[category][cultural] = templates
			}
		}
		t.Bank = bank
	}

	if len(file.FollowUps) > 0 {
		followUps := make(response.FollowUps, len(file.FollowUps))
		for name, options := range file.FollowUps {
			category, ok := emotion.ParseCategory(name)
			if !ok {
				return fmt.Errorf("unknown category %q in followups", name)
			}
			followUps[category] = options
		}
		t.FollowUps = followUps
	}
	return nil
}

func validateOpposites(opposites map[emotion.Category]emotion.Category) error {
	for _, c := range emotion.Categories() {
		if _, ok := opposites[c]; !ok {
			return fmt.Errorf("opposites table missing category %q", c)
		}
	}
	return nil
}
