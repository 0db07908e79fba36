package config

import "sort"

const (
	Mode2D = "2d"
	Mode3D = "3d"
)

// Level is an immutable size/speed bundle. Rows and Cols apply to 2D, Size
// is the cube edge for 3D.
type Level struct {
	Name           string  `yaml:"name"`
	Rows           int     `yaml:"rows,omitempty"`
	Cols           int     `yaml:"cols,omitempty"`
	Size           int     `yaml:"size,omitempty"`
	StepsPerSecond float64 `yaml:"steps_per_second"`
	Wrap           bool    `yaml:"wrap"`
	RandomFill     float64 `yaml:"random_fill"`
	Summary        string  `yaml:"summary"`
}

// LevelOrder is the display order of level names.
var LevelOrder = []string{"beginner", "intermediate", "advanced"}

var Levels = map[string]map[string]Level{
	Mode2D: {
		"beginner": {
			Name: "beginner", Rows: 20, Cols: 20, StepsPerSecond: 4, Wrap: false, RandomFill: 0.28,
			Summary: "20 x 20, slower pace for first-time learners",
		},
		"intermediate": {
			Name: "intermediate", Rows: 35, Cols: 35, StepsPerSecond: 8, Wrap: false, RandomFill: 0.24,
			Summary: "35 x 35, more interactions and moving structures",
		},
		"advanced": {
			Name: "advanced", Rows: 60, Cols: 60, StepsPerSecond: 14, Wrap: true, RandomFill: 0.2,
			Summary: "60 x 60, fast evolution and toroidal edge wrapping",
		},
	},
	Mode3D: {
		"beginner": {
			Name: "beginner", Size: 10, StepsPerSecond: 3, Wrap: false, RandomFill: 0.2,
			Summary: "10^3 voxels, room to watch single clusters",
		},
		"intermediate": {
			Name: "intermediate", Size: 14, StepsPerSecond: 5, Wrap: false, RandomFill: 0.16,
			Summary: "14^3 voxels, several interacting structures",
		},
		"advanced": {
			Name: "advanced", Size: 20, StepsPerSecond: 8, Wrap: true, RandomFill: 0.12,
			Summary: "20^3 voxels with wrapping on every axis",
		},
	},
}

// RulePreset names a well-known rule string.
type RulePreset struct {
	Name        string
	Mode        string
	Spec        string
	Description string
}

var Rules = map[string]RulePreset{
	"conway":             {"conway", Mode2D, "B3/S23", "Conway's Game of Life"},
	"highlife":           {"highlife", Mode2D, "B36/S23", "Life plus a replicator"},
	"seeds":              {"seeds", Mode2D, "B2/S", "every live cell dies, explosive growth"},
	"daynight":           {"daynight", Mode2D, "B3678/S34678", "symmetric under inversion"},
	"life-without-death": {"life-without-death", Mode2D, "B3/S012345678", "cells never die"},
	"3d-4555":            {"3d-4555", Mode3D, "B5/S4,5", "Bays' 3D life"},
	"3d-5766":            {"3d-5766", Mode3D, "B6/S5,6,7", "sparser 3D life"},
	"clouds":             {"clouds", Mode3D, "B13,14,17,18,19/S13,14,15,16,17,18,19,20,21,22,23,24,25,26", "dense blobs that settle"},
	"crystal":            {"crystal", Mode3D, "B1,3/S0,1,2,3,4,5,6", "crystal growth from a few seeds"},
}

var defaultRules = map[string]string{
	Mode2D: "conway",
	Mode3D: "3d-4555",
}

// GetLevel returns the named level for a mode.
func GetLevel(mode, name string) (Level, bool) {
	lv, ok := Levels[mode][name]
	return lv, ok
}

// ListLevels returns the level names of a mode in display order, or nil for
// an unknown mode.
func ListLevels(mode string) []string {
	if _, ok := Levels[mode]; !ok {
		return nil
	}
	return append([]string(nil), LevelOrder...)
}

// ListRules returns the preset names for a mode, sorted.
func ListRules(mode string) []string {
	var names []string
	for name, p := range Rules {
		if p.Mode == mode {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// DefaultRule returns the rule preset name used when none is configured.
func DefaultRule(mode string) string {
	return defaultRules[mode]
}

// ResolveRule maps a preset name to its rule string. An empty value selects
// the mode's default; anything that is not a preset name is returned as is
// and parsed as a literal rule later.
func ResolveRule(mode, nameOrSpec string) string {
	if nameOrSpec == "" {
		nameOrSpec = DefaultRule(mode)
	}
	if p, ok := Rules[nameOrSpec]; ok {
		return p.Spec
	}
	return nameOrSpec
}
