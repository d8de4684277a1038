package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	// ErrNoHome indicates that the user's home directory could not be determined
	ErrNoHome = errors.New("unable to determine home directory")

	// ErrPathManagerInit indicates that the PathManager failed to initialize
	ErrPathManagerInit = errors.New("failed to initialize path manager")
)

const appDirName = "kiss"

// dirKind selects which per-user directory to resolve
type dirKind int

const (
	configDirKind dirKind = iota
	cacheDirKind
)

// userDirRule says where a per-user directory lives: an environment override,
// then an OS-specific location under the home directory
type userDirRule struct {
	xdgEnv     string
	windowsEnv string
	windows    []string // under home, when windowsEnv is unset
	darwin     []string // under home
	unix       []string // under home
}

var userDirRules = map[dirKind]userDirRule{
	configDirKind: {
		xdgEnv:     "XDG_CONFIG_HOME",
		windowsEnv: "APPDATA",
		windows:    []string{"AppData", "Roaming"},
		darwin:     []string{"Library", "Application Support"},
		unix:       []string{".config"},
	},
	cacheDirKind: {
		xdgEnv:     "XDG_CACHE_HOME",
		windowsEnv: "LOCALAPPDATA",
		windows:    []string{"AppData", "Local"},
		darwin:     []string{"Library", "Caches"},
		unix:       []string{".cache"},
	},
}

// PathManager resolves every file the application reads or writes
type PathManager struct {
	configDir string
	cacheDir  string
	workDir   string
}

func newPathManager() (*PathManager, error) {
	configDir, err := userDir(configDirKind)
	if err != nil {
		return nil, fmt.Errorf("get config directory: %w", err)
	}
	cacheDir, err := userDir(cacheDirKind)
	if err != nil {
		return nil, fmt.Errorf("get cache directory: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get current directory: %w", err)
	}
	return &PathManager{configDir: configDir, cacheDir: cacheDir, workDir: workDir}, nil
}

// userDir returns the platform directory of the given kind, with the app name appended
func userDir(kind dirKind) (string, error) {
	rule := userDirRules[kind]
	if xdg := os.Getenv(rule.xdgEnv); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoHome
	}

	var parts []string
	switch runtime.GOOS {
	case "windows":
		if base := os.Getenv(rule.windowsEnv); base != "" {
			return filepath.Join(base, appDirName), nil
		}
		parts = rule.windows
	case "darwin":
		parts = rule.darwin
		// terminal users on macOS usually keep dotfiles under ~/.config
		if kind == configDirKind {
			if info, err := os.Stat(filepath.Join(home, ".config")); err == nil && info.IsDir() {
				parts = rule.unix
			}
		}
	default:
		parts = rule.unix
	}

	return filepath.Join(append(append([]string{home}, parts...), appDirName)...), nil
}

// ConfigDir returns the user config directory
func (pm *PathManager) ConfigDir() string {
	return pm.configDir
}

// CacheDir returns the user cache directory
func (pm *PathManager) CacheDir() string {
	return pm.cacheDir
}

// ConfigFile returns the user config file
func (pm *PathManager) ConfigFile() string {
	return filepath.Join(pm.configDir, "config.yaml")
}

// ProjectConfigDir returns the directory-local config directory (.kiss/)
func (pm *PathManager) ProjectConfigDir() string {
	return filepath.Join(pm.workDir, "."+appDirName)
}

// ProjectConfigFile returns the directory-local config file
func (pm *PathManager) ProjectConfigFile() string {
	return filepath.Join(pm.ProjectConfigDir(), "config.yaml")
}

// DataFile returns the default favourites file
func (pm *PathManager) DataFile() string {
	return filepath.Join(pm.configDir, "favourites.yaml")
}

// LogFile returns the application log
func (pm *PathManager) LogFile() string {
	return filepath.Join(pm.cacheDir, appDirName+".log")
}

var (
	pathManager    *PathManager
	pathManagerErr error
	pathManagerMu  sync.Mutex
)

// getPathManager returns the global PathManager, resolving it on first use
func getPathManager() (*PathManager, error) {
	pathManagerMu.Lock()
	defer pathManagerMu.Unlock()
	if pathManager == nil && pathManagerErr == nil {
		pathManager, pathManagerErr = newPathManager()
	}
	return pathManager, pathManagerErr
}

// InitPaths resolves the application paths. Must be called early in main.
func InitPaths() error {
	if _, err := getPathManager(); err != nil {
		return fmt.Errorf("%w: %v", ErrPathManagerInit, err)
	}
	return nil
}

// ResetPathManager forgets the resolved paths so tests can change the environment
func ResetPathManager() {
	pathManagerMu.Lock()
	defer pathManagerMu.Unlock()
	pathManager = nil
	pathManagerErr = nil
}

// mustGetPathManager panics when InitPaths has not succeeded
func mustGetPathManager() *PathManager {
	pm, err := getPathManager()
	if err != nil {
		panic(fmt.Sprintf("path manager not initialized: %v (call InitPaths() first)", err))
	}
	return pm
}

// GetConfigDir returns the user config directory
func GetConfigDir() string {
	return mustGetPathManager().ConfigDir()
}

// GetCacheDir returns the user cache directory
func GetCacheDir() string {
	return mustGetPathManager().CacheDir()
}

// GetDefaultDataFile returns the default favourites file
func GetDefaultDataFile() string {
	return mustGetPathManager().DataFile()
}

// GetLogFile returns the application log
func GetLogFile() string {
	return mustGetPathManager().LogFile()
}
