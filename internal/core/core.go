package core

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	AppName        = "Profile Editor"
	AppID          = "com.profileeditor.app"
	ConfigFileName = "config.json"
	AppLogName     = "editor.log"
	TextDomain     = "profile-editor"

	// ConfigDirEnv overrides the configuration directory when set.
	ConfigDirEnv = "PROFILE_EDITOR_CONFIG_DIR"
	// ResourcesDirEnv overrides the UI resources directory when set.
	ResourcesDirEnv = "PROFILE_EDITOR_RESOURCES"

	// DialogsResourceName is the markup file all dialog layouts load from.
	DialogsResourceName = "dialogs.xml"
)

// Sep is the platform path separator as a string. Chooser results for
// directories end with it.
var Sep = string(os.PathSeparator)

// IsWin reports whether the app runs on Windows, where the toolkit has no
// built-in translation support for the dialog markup format.
var IsWin = runtime.GOOS == "windows"

// IsDarwin reports whether the app runs on macOS.
var IsDarwin = runtime.GOOS == "darwin"

// IsGnomeSession reports whether the current desktop session is GNOME.
// Dialogs built from resources use a header bar only in that case.
var IsGnomeSession = detectGnomeSession()

func detectGnomeSession() bool {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if strings.Contains(strings.ToLower(os.Getenv(key)), "gnome") {
			return true
		}
	}
	return false
}

// UIResourcesPath returns the directory holding UI markup resources.
func UIResourcesPath() string {
	if dir := strings.TrimSpace(os.Getenv(ResourcesDirEnv)); dir != "" {
		return dir
	}
	return "resources"
}

// DialogsResourcePath returns the full path to the dialog markup file.
func DialogsResourcePath() string {
	return filepath.Join(UIResourcesPath(), DialogsResourceName)
}
