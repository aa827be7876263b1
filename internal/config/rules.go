package config

import (
	"fmt"
	"os"

	"github.com/BartekS5/cellcheck/pkg/models"
)

// LoadRules reads and parses a JSON rules file from the given path.
func LoadRules(filePath string) (*models.RuleSet, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w", filePath, err)
	}

	rules, err := models.LoadRuleSet(bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file '%s': %w", filePath, err)
	}
	return rules, nil
}
