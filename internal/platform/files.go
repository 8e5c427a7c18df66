package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	WindowsCmdFlag  = "/c"
	StartCommand    = "start"
)

// Session environment variables used for GUI detection on Linux
var displayEnvVars = []string{"DISPLAY", "WAYLAND_DISPLAY"}

// CreateDirectoryIfNotExists creates the directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileSize returns the size of a file in bytes, or 0 with ok=false when the
// path does not exist or is not a regular file.
func FileSize(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// OpenFolder opens the directory in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	default:
		return exec.Command(XDGOpenCommand, absPath).Run()
	}
}

// HasGUISession reports whether opening a folder in a GUI file manager is
// likely to work. Windows and macOS are assumed graphical; on other systems
// an xdg-open binary and a display session are required, which avoids calling
// xdg-open on headless servers where it falls back to text browsers.
func HasGUISession() bool {
	if runtime.GOOS == OSWindows || runtime.GOOS == OSDarwin {
		return true
	}
	if _, err := exec.LookPath(XDGOpenCommand); err != nil {
		return false
	}
	for _, name := range displayEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	switch os.Getenv("XDG_SESSION_TYPE") {
	case "wayland", "x11":
		return true
	}
	return false
}
