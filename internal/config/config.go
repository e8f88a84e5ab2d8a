package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "ChronoSort"
	AppID       = "com.github.roljohnt.chronosort"
	CLIName     = "chronosort"
	CLIUsage    = "Organize files into date-named folders (YYYY-MM-DD)"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// DirPermShared represents drwxr-xr-x, used for date folders created
	// inside the user's own library.
	DirPermShared fs.FileMode = 0755
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDryRun  = "dry-run"
	FlagYes     = "yes"
	FlagYesShrt = "y"
	FlagDebug   = "debug"
	FlagVersion = "version"

	FlagDescDryRun  = "Show what would be done without moving any files"
	FlagDescYes     = "Skip the confirmation prompt before moving files"
	FlagDescDebug   = "Enable debug logging"
	FlagDescVersion = "Show application version and exit"

	ArgsUsageDir     = "[directory]"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Organizing Rules
// -----------------------------------------------------------------------------

// ImageExtensions is the closed set of extensions for which an embedded
// capture date is looked up before falling back to filesystem timestamps.
// Keys are lowercase and include the leading dot.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

const (
	// FolderDateFormat names destination folders and is also used to detect
	// folders that already hold organized output.
	FolderDateFormat = "2006-01-02"

	// ExifDateFormat is the timestamp layout used inside EXIF tags.
	ExifDateFormat = "2006:01:02 15:04:05"

	// FormatCollision renders a deduplicated filename: base, counter, extension.
	FormatCollision = "%s_%d%s"

	HiddenFilePrefix = "."
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 640
	MainWindowHeight = 520
	LogTimeFormat    = "15:04:05"

	// Preference Keys
	PrefLanguage = "language"
	PrefLastDir  = "last_directory"
	PrefDryRun   = "dry_run"
	PrefLastRun  = "last_run_version"
)

// DefaultLanguage is used when no UI language preference is stored.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyLblDirectory  = "lbl_directory"
	TKeyBtnBrowse     = "btn_browse"
	TKeyBtnOrganize   = "btn_organize"
	TKeyBtnCancel     = "btn_cancel"
	TKeyBtnClearLog   = "btn_clear_log"
	TKeyChkDryRun     = "chk_dry_run"
	TKeyLblOptions    = "lbl_options"
	TKeyLblLog        = "lbl_log"
	TKeyLblLanguage   = "lbl_language"
	TKeyStatusReady   = "status_ready"
	TKeyStatusRunning = "status_running"
	TKeyStatusDone    = "status_done" // Requires Moved, Skipped, Failed
	TKeyStatusStopped = "status_stopped"

	TKeyLogSelected = "log_selected" // Requires Dir
	TKeyLogDryRun   = "log_dry_run"
	TKeyLogSummary  = "log_summary" // Requires Moved, Planned, Skipped, Failed

	TKeyErrNoDir      = "err_no_dir"
	TKeyErrInvalidDir = "err_invalid_dir"
)

// -----------------------------------------------------------------------------
// Reporter Output Formats
// -----------------------------------------------------------------------------

const (
	FormatRecordMove    = "%s: %s -> %s\n"
	FormatRecordNoDest  = "%s: %s\n"
	FormatRecordReason  = "%s: %s (%s)\n"
	FormatSummaryLine   = "  %-8s %d\n"
	SummaryHeader       = "Summary:\n"
	SummaryRule         = "--------------------------------------------------\n"
	MsgDryRunHint       = "\nTo actually move the files, run again without --dry-run.\n"
	MsgOrganizingIn     = "Organizing files in: %s\n"
	MsgDryRunBanner     = "DRY RUN MODE - No files will be moved\n"
	MsgConfirmPrompt    = "This will organize files in: %s\nDo you want to continue? (y/N): "
	MsgCancelled        = "Operation cancelled.\n"
)

// ConfirmAnswers are the accepted affirmative replies to the CLI prompt.
var ConfirmAnswers = []string{"y", "yes"}

// -----------------------------------------------------------------------------
// Skip & Failure Reasons
// -----------------------------------------------------------------------------

const (
	ReasonSymlink          = "symbolic link"
	ReasonHidden           = "hidden file"
	ReasonAlreadyOrganized = "already in date folder"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrTargetMissing = "target directory does not exist"
	ErrTargetNotDir  = "target is not a directory"
	ErrTargetRead    = "cannot read target directory"
	ErrCreateDestDir = "could not create destination folder"
	ErrMoveFile      = "could not move file"
	ErrStatFile      = "could not read file information"
	ErrNoCaptureDate = "no capture date tag present"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrLocNotInit    = "localizer not initialized"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgRunStarted    = "Organizing run started"
	MsgRunFinished   = "Organizing run finished"
	MsgRunCancelled  = "Organizing run cancelled"
	MsgSkippedDir    = "Skipping directory"
	MsgEntryOutcome  = "Entry processed"
	MsgMetadataMiss  = "No usable capture metadata, using timestamps"
	MsgCaptureDate   = "Using embedded capture date"
	MsgCollision     = "Destination name collision resolved"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgOrganizeReq   = "Organize requested"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyDir       = "dir"
	LogKeySource    = "source"
	LogKeyDest      = "dest"
	LogKeyDate      = "date"
	LogKeyDryRun    = "dry_run"
	LogKeyStatus    = "status"
	LogKeyReason    = "reason"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyStats     = "stats"
	LogKeyMoved     = "moved"
	LogKeyPlanned   = "planned"
	LogKeySkipped   = "skipped"
	LogKeyFailed    = "failed"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompEngine   = "engine"
	CompResolver = "resolver"
	CompPlanner  = "planner"
	CompMain     = "main"
	CompI18n     = "i18n"
)
