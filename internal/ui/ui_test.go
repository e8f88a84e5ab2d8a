package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roljohnt/chronosort/internal/config"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with mocked dependencies.
func setupTestApp(t *testing.T) *ChronoSortApp {
	t.Helper()

	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewChronoSortApp(a, ctx)

	// Default MockClock to a neutral time if not overridden by test
	app.Clock = MockClock{CurrentTime: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}

	// Manually load I18n as Run() is skipped
	app.SetupI18n()

	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)

	// Case 1: English (Default)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Organize Files", app.GetMsg(config.TKeyBtnOrganize))

	// Case 2: French
	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Organiser les fichiers", app.GetMsg(config.TKeyBtnOrganize))
}

func TestLocalization_SupportedLanguages(t *testing.T) {
	app := setupTestApp(t)

	assert.Contains(t, app.SupportedLanguages, "en")
	assert.Contains(t, app.SupportedLanguages, "fr")
}

func TestLocalization_MissingKeyFallsBack(t *testing.T) {
	app := setupTestApp(t)
	app.UpdateLocalizer()

	assert.Equal(t, "nonexistent_key", app.GetMsg("nonexistent_key"))
}

func TestLocalization_TemplateData(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	msg := app.GetMsgData(config.TKeyStatusDone, map[string]interface{}{
		"Moved":   3,
		"Skipped": 1,
		"Failed":  0,
	})
	assert.Equal(t, "Done - 3 moved, 1 skipped, 0 failed", msg)
}

// -----------------------------------------------------------------------------
// Window & Preference Tests
// -----------------------------------------------------------------------------

func TestMainWindow_Defaults(t *testing.T) {
	app := setupTestApp(t)
	app.buildMainWindow()

	// Dry run defaults to on: a first-time user should preview, not move.
	assert.True(t, app.dryRunCheck.Checked)

	assert.Equal(t, app.GetMsg(config.TKeyStatusReady), app.statusLabel.Text)
	assert.True(t, app.cancelBtn.Disabled(), "Cancel is only active during a run")
	assert.False(t, app.organizeBtn.Disabled())
	assert.Empty(t, app.dirEntry.Text)
}

func TestMainWindow_DryRunPreferencePersists(t *testing.T) {
	app := setupTestApp(t)
	app.buildMainWindow()

	app.dryRunCheck.SetChecked(false)
	assert.False(t, app.Preferences.BoolWithFallback(config.PrefDryRun, true))

	app.dryRunCheck.SetChecked(true)
	assert.True(t, app.Preferences.Bool(config.PrefDryRun))
}

func TestMainWindow_LastDirectoryRestored(t *testing.T) {
	a := test.NewApp()
	a.Preferences().SetString(config.PrefLastDir, "/photos/camera")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewChronoSortApp(a, ctx)
	app.Clock = MockClock{CurrentTime: time.Now()}
	app.SetupI18n()
	app.buildMainWindow()

	assert.Equal(t, "/photos/camera", app.dirEntry.Text)
}

func TestLanguageSwitch_RefreshesTexts(t *testing.T) {
	app := setupTestApp(t)
	app.buildMainWindow()

	app.onLanguageChanged("fr")

	assert.Equal(t, "fr", app.Preferences.String(config.PrefLanguage))
	assert.Equal(t, "Organiser les fichiers", app.organizeBtn.Text)
	assert.Equal(t, "Annuler", app.cancelBtn.Text)
}

// -----------------------------------------------------------------------------
// Run Guard Tests
// -----------------------------------------------------------------------------

func TestStartOrganize_RejectsMissingDirectory(t *testing.T) {
	app := setupTestApp(t)
	app.buildMainWindow()

	app.dirEntry.SetText("")
	app.startOrganize()
	assert.False(t, app.isRunning(), "empty input must not start a run")

	app.dirEntry.SetText(filepath.Join(t.TempDir(), "nope"))
	app.startOrganize()
	assert.False(t, app.isRunning(), "nonexistent path must not start a run")
}

func TestCountCandidates(t *testing.T) {
	app := setupTestApp(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2025-01-01"), 0755))

	assert.Equal(t, 2, app.countCandidates(dir))
	assert.Equal(t, 0, app.countCandidates(filepath.Join(dir, "missing")))
}

// -----------------------------------------------------------------------------
// Log Area Tests
// -----------------------------------------------------------------------------

func TestAppendLog_TimestampsLines(t *testing.T) {
	app := setupTestApp(t)
	app.buildMainWindow()
	app.Clock = MockClock{CurrentTime: time.Date(2025, 5, 1, 14, 30, 45, 0, time.UTC)}

	app.appendLog("first line")
	app.appendLog("second line")

	assert.Contains(t, app.logView.Text, "[14:30:45] first line\n")
	assert.Contains(t, app.logView.Text, "[14:30:45] second line\n")

	app.clearLog()
	assert.Empty(t, app.logView.Text)
}
