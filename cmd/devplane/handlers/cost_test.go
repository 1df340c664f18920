package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost_Styled(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	output := captureOutput(func() {
		require.NoError(t, Cost(context.Background(), path, false, false, false))
	})

	assert.Contains(t, output, "Worker Nodes")
	assert.Contains(t, output, "Managed Database")
	assert.Contains(t, output, "152.99")
}

func TestCost_Compact(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	output := captureOutput(func() {
		require.NoError(t, Cost(context.Background(), path, false, true, false))
	})

	assert.Contains(t, output, "152.99")
	assert.Contains(t, output, "coder/dev")
}

func TestCost_JSON(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	output := captureOutput(func() {
		require.NoError(t, Cost(context.Background(), path, true, false, false))
	})

	var doc struct {
		TotalCost string `json:"total_cost"`
		Currency  string `json:"currency"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &doc))
	assert.Equal(t, "152.99", doc.TotalCost)
	assert.Equal(t, "EUR", doc.Currency)
}

func TestCost_UnknownTierWarns(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, `project: coder
environment: dev
overrides:
  node_type: GP1-XXL
`)

	output := captureOutput(func() {
		require.NoError(t, Cost(context.Background(), path, false, false, false))
	})

	// 11.23 + 8.90 = 20.13, the unknown compute tier contributes zero.
	assert.Contains(t, output, "20.13")
	assert.Contains(t, output, "GP1-XXL")
}

func TestCostHistory_Empty(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	output := captureOutput(func() {
		require.NoError(t, CostHistory(context.Background(), path, 10))
	})

	assert.Contains(t, output, "No saved estimates")
	assert.Contains(t, output, "plan --save")
}

func TestCostHistory_ListsSaved(t *testing.T) {
	saveAndRestoreFactories(t)
	useTempStore(t)
	path := writeTestConfig(t, devConfigYAML)

	captureOutput(func() {
		require.NoError(t, Plan(context.Background(), path, PlanOptions{Save: true}))
	})

	output := captureOutput(func() {
		require.NoError(t, CostHistory(context.Background(), path, 10))
	})

	assert.Contains(t, output, "Saved estimates for coder/dev")
	assert.Contains(t, output, "152.99")
}
