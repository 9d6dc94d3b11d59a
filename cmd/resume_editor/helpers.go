package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-edit-agent/internal/llm"
	"github.com/jonathan/resume-edit-agent/internal/types"
)

// loadResume reads and parses a resume JSON document
func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var doc types.Resume
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &doc, nil
}

// writeResume writes the document back as indented JSON
func writeResume(path string, doc *types.Resume) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write resume file %s: %w", path, err)
	}
	return nil
}

// resolveAPIKey returns the first non-empty key: provider env var, then the
// configured value
func resolveAPIKey(provider llm.Provider, configured string) (string, error) {
	envVar := "GEMINI_API_KEY"
	if provider == llm.ProviderAnthropic {
		envVar = "ANTHROPIC_API_KEY"
	}
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	if configured != "" {
		return configured, nil
	}
	return "", fmt.Errorf("no API key: set %s or pass --api-key", envVar)
}

// newClient builds the model client for the selected provider, applying an
// optional model override for the standard and advanced tiers
func newClient(ctx context.Context, provider, apiKey, modelOverride string) (llm.Client, error) {
	p := llm.Provider(provider)
	if provider == "" {
		p = llm.ProviderGemini
	}

	key, err := resolveAPIKey(p, apiKey)
	if err != nil {
		return nil, err
	}

	cfg := llm.DefaultConfigForProvider(p)
	if modelOverride != "" {
		cfg = cfg.WithModel(llm.TierStandard, modelOverride).WithModel(llm.TierAdvanced, modelOverride)
	}

	return llm.NewClient(ctx, cfg, key)
}
