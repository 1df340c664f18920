package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/devplane/devplane/internal/config"
	"github.com/devplane/devplane/internal/pricing"
	"github.com/devplane/devplane/internal/store"
)

// Check status values.
const (
	CheckPass = "pass"
	CheckWarn = "warn"
	CheckFail = "fail"
)

// pricingMaxAge is how old a stored price snapshot may get before doctor
// flags it as stale.
const pricingMaxAge = 30 * 24 * time.Hour

// CheckResult is the outcome of a single doctor check.
type CheckResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// doctorReport is the JSON form of a doctor run.
type doctorReport struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// Doctor verifies the environment is ready for provisioning: the config
// resolves, credentials are present, the state bucket is bootstrapped, and
// the pricing data is fresh. Any failing check makes the command exit
// non-zero; warnings do not.
func Doctor(ctx context.Context, configPath string, jsonOutput bool) error {
	var checks []CheckResult

	// Configuration
	var effective *config.EffectiveConfig
	cfg, err := loadConfig(configPath)
	if err == nil {
		effective, err = config.Resolve(cfg)
	}
	if err != nil {
		checks = append(checks, CheckResult{Name: "configuration", Status: CheckFail, Message: err.Error()})
	} else {
		checks = append(checks, CheckResult{
			Name:    "configuration",
			Status:  CheckPass,
			Message: fmt.Sprintf("%s/%s resolves against defaults %s", effective.Project, string(effective.Environment), effective.DefaultsVersion),
		})
	}

	// Credentials
	accessKey, secretKey, credErr := scalewayCredentials()
	if credErr != nil {
		checks = append(checks, CheckResult{Name: "credentials", Status: CheckFail, Message: credErr.Error()})
	} else {
		checks = append(checks, CheckResult{Name: "credentials", Status: CheckPass, Message: "SCW_ACCESS_KEY and SCW_SECRET_KEY are set"})
	}

	// State bucket, reachable only with a resolved config and credentials
	if effective != nil && credErr == nil {
		checks = append(checks, checkStateBucket(ctx, effective, accessKey, secretKey))
	} else {
		checks = append(checks, CheckResult{Name: "state bucket", Status: CheckWarn, Message: "skipped, needs configuration and credentials"})
	}

	// Pricing freshness
	checks = append(checks, checkPricingFreshness(ctx))

	if jsonOutput {
		report := doctorReport{Status: worstStatus(checks), Checks: checks}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printDoctorChecks(effective, checks)
	}

	failed := 0
	for _, c := range checks {
		if c.Status == CheckFail {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

// checkStateBucket verifies the terraform state bucket exists with
// versioning enabled.
func checkStateBucket(ctx context.Context, cfg *config.EffectiveConfig, accessKey, secretKey string) CheckResult {
	name := cfg.DerivedNames().StateBucketName

	client, err := newStateBucketClient(cfg.Region, accessKey, secretKey)
	if err != nil {
		return CheckResult{Name: "state bucket", Status: CheckFail, Message: err.Error()}
	}

	exists, err := client.BucketExists(ctx, name)
	if err != nil {
		return CheckResult{Name: "state bucket", Status: CheckFail, Message: err.Error()}
	}
	if !exists {
		return CheckResult{Name: "state bucket", Status: CheckWarn, Message: fmt.Sprintf("%s not created yet, run 'devplane bootstrap'", name)}
	}

	versioned, err := client.VersioningEnabled(ctx, name)
	if err != nil {
		return CheckResult{Name: "state bucket", Status: CheckFail, Message: err.Error()}
	}
	if !versioned {
		return CheckResult{Name: "state bucket", Status: CheckWarn, Message: fmt.Sprintf("%s exists but versioning is off, run 'devplane bootstrap'", name)}
	}
	return CheckResult{Name: "state bucket", Status: CheckPass, Message: name + " exists with versioning enabled"}
}

// checkPricingFreshness reports the age of the newest price snapshot.
func checkPricingFreshness(ctx context.Context) CheckResult {
	db, err := openStore()
	if err != nil {
		return CheckResult{Name: "pricing data", Status: CheckWarn, Message: "store unavailable, estimates use the builtin table"}
	}

	snap, err := store.NewSnapshotRepository(db).Latest(ctx)
	if err != nil {
		return CheckResult{
			Name:    "pricing data",
			Status:  CheckWarn,
			Message: fmt.Sprintf("no snapshot stored, estimates use builtin table %s; run 'devplane pricing update'", pricing.DefaultTableVersion),
		}
	}

	age := time.Since(snap.CreatedAt)
	if age > pricingMaxAge {
		return CheckResult{
			Name:    "pricing data",
			Status:  CheckWarn,
			Message: fmt.Sprintf("snapshot %s is %d days old, run 'devplane pricing update'", snap.Version, int(age.Hours()/24)),
		}
	}
	return CheckResult{
		Name:    "pricing data",
		Status:  CheckPass,
		Message: fmt.Sprintf("snapshot %s from %s", snap.Version, snap.CreatedAt.Format("2006-01-02")),
	}
}

// worstStatus returns the most severe status across all checks.
func worstStatus(checks []CheckResult) string {
	worst := CheckPass
	for _, c := range checks {
		switch {
		case c.Status == CheckFail:
			return CheckFail
		case c.Status == CheckWarn && worst == CheckPass:
			worst = CheckWarn
		}
	}
	return worst
}

func printDoctorChecks(cfg *config.EffectiveConfig, checks []CheckResult) {
	title := "devplane doctor"
	if cfg != nil {
		title += fmt.Sprintf(": %s/%s", cfg.Project, string(cfg.Environment))
	}

	fmt.Println()
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("═", len(title)))
	fmt.Println()

	for _, c := range checks {
		printCheckRow(c)
	}
	fmt.Println()
}

func printCheckRow(c CheckResult) {
	indicator := "✅" // green check
	switch c.Status {
	case CheckWarn:
		indicator = "⚠️" // warning sign
	case CheckFail:
		indicator = "❌" // red X
	}

	if c.Message != "" {
		fmt.Printf("  %s  %-16s %s\n", indicator, c.Name, c.Message)
	} else {
		fmt.Printf("  %s  %s\n", indicator, c.Name)
	}
}
