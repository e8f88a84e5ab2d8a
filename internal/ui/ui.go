package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/roljohnt/chronosort/internal/config"
	"github.com/roljohnt/chronosort/internal/engine"
)

// ChronoSortApp encapsulates the UI state, preferences, and the organizing
// worker. The engine itself knows nothing about the event loop: the window
// sends it one organize request per click and renders the record stream it
// gets back.
type ChronoSortApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock    engine.Clock             // Injected clock for testability
	Metadata engine.CaptureDateReader // Capture-date source, mockable in tests

	SupportedLanguages []string

	dirEntry    *widget.Entry
	dryRunCheck *widget.Check
	organizeBtn *widget.Button
	cancelBtn   *widget.Button
	clearBtn    *widget.Button
	progress    *widget.ProgressBar
	logView     *widget.Entry
	statusLabel *widget.Label
	langSelect  *widget.Select

	runMut    sync.Mutex
	running   bool
	cancelRun context.CancelFunc
}

// NewChronoSortApp constructs the application and wires dependencies.
func NewChronoSortApp(a fyne.App, ctx context.Context) *ChronoSortApp {
	return &ChronoSortApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Clock:       engine.RealClock{},
		Metadata:    engine.ExifReader{},
	}
}

// Run builds the main window and starts the UI loop.
func (app *ChronoSortApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.Window.Show()
	app.App.Run()
}

// buildMainWindow assembles the single-window layout: directory picker,
// options, action row, progress bar, log area, and status bar.
func (app *ChronoSortApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	app.dirEntry = widget.NewEntry()
	app.dirEntry.SetText(app.Preferences.String(config.PrefLastDir))

	browseBtn := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), app.browseDirectory)
	dirRow := container.NewBorder(nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblDirectory)), browseBtn, app.dirEntry)

	app.dryRunCheck = widget.NewCheck(app.GetMsg(config.TKeyChkDryRun), func(b bool) {
		app.Preferences.SetBool(config.PrefDryRun, b)
	})
	app.dryRunCheck.Checked = app.Preferences.BoolWithFallback(config.PrefDryRun, true)
	optionsCard := widget.NewCard(app.GetMsg(config.TKeyLblOptions), "", app.dryRunCheck)

	app.organizeBtn = widget.NewButton(app.GetMsg(config.TKeyBtnOrganize), app.startOrganize)
	app.organizeBtn.Importance = widget.HighImportance
	app.cancelBtn = widget.NewButton(app.GetMsg(config.TKeyBtnCancel), app.cancelOperation)
	app.cancelBtn.Disable()
	app.clearBtn = widget.NewButton(app.GetMsg(config.TKeyBtnClearLog), app.clearLog)
	buttonRow := container.NewHBox(app.organizeBtn, app.cancelBtn, app.clearBtn)

	app.progress = widget.NewProgressBar()

	app.logView = widget.NewMultiLineEntry()
	app.logView.Wrapping = fyne.TextWrapWord
	logCard := widget.NewCard(app.GetMsg(config.TKeyLblLog), "", app.logView)

	app.statusLabel = widget.NewLabel(app.GetMsg(config.TKeyStatusReady))

	app.langSelect = widget.NewSelect(app.SupportedLanguages, app.onLanguageChanged)
	app.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	langRow := container.NewBorder(nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblLanguage)), nil, app.langSelect)

	top := container.NewVBox(dirRow, optionsCard, buttonRow, app.progress)
	bottom := container.NewVBox(langRow, app.statusLabel)

	w.SetContent(container.NewBorder(top, bottom, nil, nil, logCard))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
}

// browseDirectory opens the folder picker and records the selection.
func (app *ChronoSortApp) browseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		app.dirEntry.SetText(dir)
		app.Preferences.SetString(config.PrefLastDir, dir)
		app.appendLog(app.GetMsgData(config.TKeyLogSelected, map[string]interface{}{"Dir": dir}))
	}, app.Window)
}

// startOrganize validates the input and launches the organizing worker.
func (app *ChronoSortApp) startOrganize() {
	dir := strings.TrimSpace(app.dirEntry.Text)
	if dir == "" {
		dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrNoDir)), app.Window)
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrInvalidDir)), app.Window)
		return
	}

	app.runMut.Lock()
	if app.running {
		app.runMut.Unlock()
		return
	}
	app.running = true
	runCtx, cancel := context.WithCancel(app.Ctx)
	app.cancelRun = cancel
	app.runMut.Unlock()

	dryRun := app.dryRunCheck.Checked

	slog.Info(config.MsgOrganizeReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDir, dir,
		config.LogKeyDryRun, dryRun,
	)

	app.setRunning(true)
	app.statusLabel.SetText(app.GetMsg(config.TKeyStatusRunning))
	if dryRun {
		app.appendLog(app.GetMsg(config.TKeyLogDryRun))
	}

	go app.runOrganize(runCtx, dir, dryRun)
}

// runOrganize is the worker body. It owns no widgets directly: every UI
// mutation is marshaled back to the render thread with fyne.Do, keeping the
// event loop responsive during long passes.
func (app *ChronoSortApp) runOrganize(ctx context.Context, dir string, dryRun bool) {
	total := app.countCandidates(dir)
	processed := 0

	org := &engine.Organizer{
		Clock:    app.Clock,
		Metadata: app.Metadata,
		Report: func(rec engine.OutcomeRecord) {
			processed++
			frac := 1.0
			if total > 0 {
				frac = float64(processed) / float64(total)
			}
			line := formatRecord(rec, dir)
			fyne.Do(func() {
				app.appendLog(line)
				app.progress.SetValue(frac)
			})
		},
	}

	_, summary, err := org.Organize(ctx, engine.OrganizeConfig{
		TargetDir: dir,
		DryRun:    dryRun,
	})

	fyne.Do(func() {
		app.progress.SetValue(1.0)
		app.appendLog(app.GetMsgData(config.TKeyLogSummary, map[string]interface{}{
			"Moved":   summary.Moved,
			"Planned": summary.Planned,
			"Skipped": summary.Skipped,
			"Failed":  summary.Failed,
		}))

		switch {
		case errors.Is(err, context.Canceled):
			app.statusLabel.SetText(app.GetMsg(config.TKeyStatusStopped))
		case err != nil:
			app.statusLabel.SetText(err.Error())
		default:
			app.statusLabel.SetText(app.GetMsgData(config.TKeyStatusDone, map[string]interface{}{
				"Moved":   summary.Moved,
				"Skipped": summary.Skipped,
				"Failed":  summary.Failed,
			}))
		}

		app.setRunning(false)
	})

	app.runMut.Lock()
	app.running = false
	app.cancelRun = nil
	app.runMut.Unlock()
}

// countCandidates estimates the number of record-producing entries so the
// progress bar has a denominator. It is best effort only.
func (app *ChronoSortApp) countCandidates(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}

// cancelOperation requests a cooperative stop; the engine honors it at its
// per-file iteration boundary.
func (app *ChronoSortApp) cancelOperation() {
	app.runMut.Lock()
	if app.cancelRun != nil {
		app.cancelRun()
	}
	app.runMut.Unlock()
}

// isRunning reports whether a pass is in flight.
func (app *ChronoSortApp) isRunning() bool {
	app.runMut.Lock()
	defer app.runMut.Unlock()
	return app.running
}

// setRunning toggles the action buttons for the duration of a pass.
func (app *ChronoSortApp) setRunning(running bool) {
	if running {
		app.organizeBtn.Disable()
		app.cancelBtn.Enable()
		app.progress.SetValue(0)
	} else {
		app.organizeBtn.Enable()
		app.cancelBtn.Disable()
	}
}

// appendLog adds a timestamped line to the log area. Must run on the render
// thread.
func (app *ChronoSortApp) appendLog(line string) {
	stamp := app.Clock.Now().Format(config.LogTimeFormat)
	app.logView.SetText(app.logView.Text + fmt.Sprintf("[%s] %s\n", stamp, line))
	app.logView.CursorRow = strings.Count(app.logView.Text, "\n")
}

// clearLog empties the log area.
func (app *ChronoSortApp) clearLog() {
	app.logView.SetText("")
}

// onLanguageChanged persists the preference and re-labels the window.
func (app *ChronoSortApp) onLanguageChanged(lang string) {
	if lang == "" || lang == app.Preferences.String(config.PrefLanguage) {
		return
	}
	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()
	app.refreshTexts()
}

// refreshTexts re-applies localized labels after a language switch.
func (app *ChronoSortApp) refreshTexts() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.dryRunCheck.Text = app.GetMsg(config.TKeyChkDryRun)
	app.dryRunCheck.Refresh()
	app.organizeBtn.SetText(app.GetMsg(config.TKeyBtnOrganize))
	app.cancelBtn.SetText(app.GetMsg(config.TKeyBtnCancel))
	app.clearBtn.SetText(app.GetMsg(config.TKeyBtnClearLog))
	app.statusLabel.SetText(app.GetMsg(config.TKeyStatusReady))
}

// formatRecord renders one OutcomeRecord for the GUI log, relative to the
// run's target directory.
func formatRecord(rec engine.OutcomeRecord, root string) string {
	src := relTo(root, rec.Source)
	switch {
	case rec.Reason != "":
		return strings.TrimSuffix(fmt.Sprintf(config.FormatRecordReason, rec.Status, src, rec.Reason), "\n")
	case rec.Destination != "":
		return strings.TrimSuffix(fmt.Sprintf(config.FormatRecordMove, rec.Status, src, relTo(root, rec.Destination)), "\n")
	default:
		return strings.TrimSuffix(fmt.Sprintf(config.FormatRecordNoDest, rec.Status, src), "\n")
	}
}

func relTo(root, path string) string {
	if root == "" {
		return path
	}
	r, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(r, "..") {
		return path
	}
	return r
}
