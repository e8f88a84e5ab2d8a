package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/roljohnt/chronosort/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyLblDirectory,
		config.TKeyBtnBrowse,
		config.TKeyBtnOrganize,
		config.TKeyBtnCancel,
		config.TKeyBtnClearLog,
		config.TKeyChkDryRun,
		config.TKeyLblOptions,
		config.TKeyLblLog,
		config.TKeyLblLanguage,
		config.TKeyStatusReady,
		config.TKeyStatusRunning,
		config.TKeyStatusDone,
		config.TKeyStatusStopped,
		config.TKeyLogSelected,
		config.TKeyLogDryRun,
		config.TKeyLogSummary,
		config.TKeyErrNoDir,
		config.TKeyErrInvalidDir,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, locale := range []string{"active.en.json", "active.fr.json"} {
		t.Run(locale, func(t *testing.T) {
			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", locale)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				path = filepath.Join("..", "..", "internal", "ui", "locales", locale)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", locale)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, locale)
				}
			}
		})
	}
}
