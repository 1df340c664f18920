package config

import (
	"reflect"
	"testing"
)

// FuzzLoadFromBytes ensures the YAML parser never panics on arbitrary input.
func FuzzLoadFromBytes(f *testing.F) {
	f.Add([]byte(`project: coder
environment: dev
region: fr-par
`))
	f.Add([]byte(``))
	f.Add([]byte(`{{{`))
	f.Add([]byte(`project: x`))
	f.Add([]byte(`project: 12345
environment: true
overrides: "string"
`))
	f.Add([]byte(`project: coder
environment: prod
overrides:
  node_count: 999999999
  node_type: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
`))
	f.Add([]byte("project: ~\nenvironment: ~\nregion: ~\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, _ := LoadFromBytesWithoutValidation(data)
		if cfg != nil {
			_ = cfg.Validate()
		}
	})
}

// FuzzResolve asserts the resolution invariants over arbitrary override
// combinations: a successful resolution always satisfies
// min_size <= node_count <= max_size, and resolving twice is identical.
func FuzzResolve(f *testing.F) {
	f.Add("coder", "dev", "fr-par", 2, true, 1, true, 3, true, false, false)
	f.Add("coder", "prod", "pl-waw", 0, false, 0, false, 0, false, true, true)
	f.Add("acme-labs", "staging", "nl-ams", 4, true, 0, false, 8, true, false, true)
	f.Add("", "", "", -1, true, -1, true, -1, true, false, false)
	f.Add("coder", "dev", "fr-par", 0, true, 0, true, 0, true, true, false)
	f.Add("x", "qa", "mars", 100, true, 50, true, 10, true, true, true)

	f.Fuzz(func(t *testing.T, project, env, region string,
		nodeCount int, nodeCountSet bool,
		minSize int, minSizeSet bool,
		maxSize int, maxSizeSet bool,
		monitoring bool, monitoringSet bool) {

		cfg := &Config{
			Project:     project,
			Environment: Environment(env),
			Region:      Region(region),
		}
		if nodeCountSet {
			cfg.Overrides.NodeCount = &nodeCount
		}
		if minSizeSet {
			cfg.Overrides.MinSize = &minSize
		}
		if maxSizeSet {
			cfg.Overrides.MaxSize = &maxSize
		}
		if monitoringSet {
			cfg.Overrides.EnableMonitoring = &monitoring
		}

		resolved, err := Resolve(cfg)
		if err != nil {
			return
		}

		if resolved.MinSize > resolved.NodeCount || resolved.NodeCount > resolved.MaxSize {
			t.Errorf("resolved configuration violates scaling invariant: %d <= %d <= %d",
				resolved.MinSize, resolved.NodeCount, resolved.MaxSize)
		}
		if resolved.NodeCount < 1 {
			t.Errorf("resolved node_count = %d, want >= 1", resolved.NodeCount)
		}

		again, err := Resolve(cfg)
		if err != nil {
			t.Fatalf("second resolution failed after first succeeded: %v", err)
		}
		if !reflect.DeepEqual(resolved, again) {
			t.Errorf("resolution is not deterministic:\nfirst:  %+v\nsecond: %+v", resolved, again)
		}
	})
}
