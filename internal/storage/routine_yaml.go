package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"kegeltimer/internal/core/model"
	"kegeltimer/resources"

	"gopkg.in/yaml.v3"
)

const (
	routineFileName    = "routine.yaml"
	bundledRoutineName = "default_routine.yaml"
)

// userConfigDir is swapped out in tests.
var userConfigDir = os.UserConfigDir

type yamlPhase struct {
	Type     string `yaml:"type"`
	Duration int    `yaml:"duration"`
}

type yamlBlock struct {
	RepeatCount int         `yaml:"repeat_count"`
	Phases      []yamlPhase `yaml:"phases"`
}

type yamlRoutine struct {
	Blocks []yamlBlock `yaml:"blocks"`
}

// LoadRoutine reads the user's routine file. If it is absent or does not
// parse, the bundled default resource is used, and failing that the
// built-in default. The returned routine is always usable; the error
// only describes why the user file was not, for diagnostics.
func LoadRoutine(appName string) (model.Routine, error) {
	var loadErr error

	configPath, err := resolveRoutinePath(appName)
	if err != nil {
		loadErr = err
	} else {
		rawData, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			routine, parseErr := parseRoutine(rawData)
			if parseErr == nil {
				return routine, nil
			}
			loadErr = fmt.Errorf("parse routine yaml: %w", parseErr)
		case !os.IsNotExist(err):
			loadErr = fmt.Errorf("read routine file: %w", err)
		}
	}

	if bundled, err := resources.Routine(bundledRoutineName); err == nil {
		if routine, parseErr := parseRoutine(bundled); parseErr == nil {
			return routine, loadErr
		}
	}

	return model.DefaultRoutine(), loadErr
}

// SaveRoutine writes the routine to the user's config directory.
func SaveRoutine(appName string, routine model.Routine) error {
	configPath, err := resolveRoutinePath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlRoutine{}
	for _, block := range routine.Blocks {
		yamlBlockData := yamlBlock{RepeatCount: block.Repeats}
		for _, phase := range block.Phases {
			yamlBlockData.Phases = append(yamlBlockData.Phases, yamlPhase{
				Type:     string(phase.Type),
				Duration: phase.Seconds,
			})
		}
		fileData.Blocks = append(fileData.Blocks, yamlBlockData)
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal routine yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write routine file: %w", err)
	}

	return nil
}

func resolveRoutinePath(appName string) (string, error) {
	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, routineFileName), nil
}

func parseRoutine(rawData []byte) (model.Routine, error) {
	var fileData yamlRoutine
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Routine{}, err
	}

	routine := model.Routine{}
	for _, yamlBlockData := range fileData.Blocks {
		block := model.Block{Repeats: yamlBlockData.RepeatCount}
		for _, yamlPhaseData := range yamlBlockData.Phases {
			block.Phases = append(block.Phases, model.PhaseTemplate{
				Type:    parsePhaseType(yamlPhaseData.Type),
				Seconds: yamlPhaseData.Duration,
			})
		}
		routine.Blocks = append(routine.Blocks, block)
	}

	routine.Normalize()
	return routine, nil
}

// parsePhaseType treats anything that is not a hold as rest. Unknown
// phase kinds are clamped rather than rejected.
func parsePhaseType(value string) model.PhaseType {
	if value == string(model.PhaseHold) {
		return model.PhaseHold
	}
	return model.PhaseRest
}
