package config

import (
	_ "embed"
)

//go:embed defaults/worlds.yaml
var defaultWorldsYAML []byte

// DefaultYAML returns the embedded default catalog YAML, used by the
// worlds command to print a starting point for customization.
func DefaultYAML() []byte {
	return defaultWorldsYAML
}

// DefaultCatalog returns the built-in world catalog. It mirrors the
// embedded defaults/worlds.yaml and is the fallback of last resort.
func DefaultCatalog() WorldCatalog {
	return WorldCatalog{
		Version: 1,
		Worlds: []WorldSpec{
			{Index: 1, Name: "Meadow", TotalRounds: 10, DifficultyMultiplier: 1.0, QuotaStep: 2},
			{Index: 2, Name: "Thicket", TotalRounds: 10, DifficultyMultiplier: 1.15, QuotaStep: 2},
			{Index: 3, Name: "Catacombs", TotalRounds: 10, DifficultyMultiplier: 1.3, QuotaStep: 2},
			{Index: 4, Name: "Foundry", TotalRounds: 10, DifficultyMultiplier: 1.5, QuotaStep: 3},
			{Index: 5, Name: "Mirelands", TotalRounds: 10, DifficultyMultiplier: 1.7, QuotaStep: 3, HazardsUnlocked: true},
			{Index: 6, Name: "Glacier", TotalRounds: 10, DifficultyMultiplier: 1.9, QuotaStep: 3, HazardsUnlocked: true},
			{Index: 7, Name: "Ashlands", TotalRounds: 10, DifficultyMultiplier: 2.2, QuotaStep: 4, BossUnlocked: true, HazardsUnlocked: true},
			{Index: 8, Name: "Necropolis", TotalRounds: 10, DifficultyMultiplier: 2.5, QuotaStep: 4, BossUnlocked: true, HazardsUnlocked: true},
			{Index: 9, Name: "Stormspire", TotalRounds: 10, DifficultyMultiplier: 2.9, QuotaStep: 4, BossUnlocked: true, HazardsUnlocked: true},
			{Index: 10, Name: "Voidgate", TotalRounds: 10, DifficultyMultiplier: 3.3, QuotaStep: 5, BossUnlocked: true, HazardsUnlocked: true},
		},
		Endless: EndlessSpec{
			GrowthPerRound: 0.03,
		},
	}
}
