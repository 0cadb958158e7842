// internal/common/config/loader_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-xld1/ne-yesek-matching/internal/matching/scoring"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/status"
)

func TestApplyDefaults_FillsScoringModel(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, scoring.DefaultWeights(), cfg.Matching.Scoring)
	assert.Equal(t, status.DefaultThresholds(), cfg.Matching.Status)
	assert.Equal(t, "v1", cfg.Matching.Scoring.Version)
}

func TestApplyDefaults_PreservesConfiguredWeights(t *testing.T) {
	var cfg Config
	cfg.Matching.Scoring = scoring.DefaultWeights()
	cfg.Matching.Scoring.Version = "v2-experiment"
	cfg.Matching.Scoring.Base = 50
	cfg.Matching.Status = status.DefaultThresholds()
	cfg.Matching.Status.VeryBusyLoad = 0.95

	applyDefaults(&cfg)

	assert.Equal(t, "v2-experiment", cfg.Matching.Scoring.Version)
	assert.InDelta(t, 50.0, cfg.Matching.Scoring.Base, 1e-9)
	assert.InDelta(t, 0.95, cfg.Matching.Status.VeryBusyLoad, 1e-9)
}

func TestValidateConfig_RejectsZeroDivisors(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	cfg.Matching.Scoring.TrustDivisor = 0

	err := validateConfig(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trust_divisor")
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	assert.NoError(t, validateConfig(&cfg))
}
