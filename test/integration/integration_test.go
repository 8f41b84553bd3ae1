//go:build integration

// Package integration runs the Walletive API features against an in-memory
// SQLite store and a miniredis session store.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/walletive/backend/test/integration/steps"
)

const (
	featuresDir = "features"
	skipWIP     = "~@wip"
)

func suiteOptions(t *testing.T) godog.Options {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{featuresDir},
		Output:      colors.Colored(os.Stdout),
		Tags:        skipWIP,
		Concurrency: 1, // scenarios share one SQLite store
		Strict:      true,
		TestingT:    t,
	}

	if format := os.Getenv("WALLETIVE_FEATURE_FORMAT"); format != "" {
		opts.Format = format
	}
	if tags := os.Getenv("WALLETIVE_FEATURE_TAGS"); tags != "" {
		opts.Tags = tags
	}
	if os.Getenv("WALLETIVE_FEATURE_FAIL_FAST") != "" {
		opts.StopOnFailure = true
	}
	return opts
}

func TestFeatures(t *testing.T) {
	opts := suiteOptions(t)

	suite := godog.TestSuite{
		Name:                 "walletive-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite %q exited with status %d", suite.Name, status)
	}
}
