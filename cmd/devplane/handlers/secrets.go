package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devplane/devplane/internal/secrets"
)

// secretEntry represents a single credential for display.
type secretEntry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// Factory function variables for secrets - can be replaced in tests.
var (
	// generateCredentials creates a fresh credential set.
	generateCredentials = secrets.Generate
)

// Secrets generates a fresh credential set and displays it. Nothing is
// stored; re-running generates new values.
func Secrets(jsonOutput bool) error {
	creds, err := generateCredentials()
	if err != nil {
		return fmt.Errorf("failed to generate credentials: %w", err)
	}

	entries := []secretEntry{
		{Category: "Database", Name: "password", Value: creds.DatabasePassword},
		{Category: "Admin", Name: "password", Value: creds.AdminPassword},
		{Category: "Admin", Name: "password hash", Value: creds.AdminPasswordHash},
		{Category: "Session", Name: "signing key", Value: creds.SessionSigningKey},
	}

	if jsonOutput {
		b, err := json.MarshalIndent(creds, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	printSecretsStyled(entries)
	return nil
}

func printSecretsStyled(entries []secretEntry) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Println()
	fmt.Println(titleStyle.Render("  devplane secrets"))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	currentCategory := ""
	for _, entry := range entries {
		if entry.Category != currentCategory {
			if currentCategory != "" {
				fmt.Println()
			}
			fmt.Println(sectionStyle.Render("  " + entry.Category))
			fmt.Println(dimStyle.Render("  " + strings.Repeat("-", 35)))
			currentCategory = entry.Category
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", entry.Name)), valueStyle.Render(entry.Value))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("  Values are generated fresh on every run and never stored."))
	fmt.Println(dimStyle.Render("  Pass them to terraform as TF_VAR_* environment variables."))
	fmt.Println()
}
