// Package logger provides crash logging and recovery for PathWing.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// CrashLogDir is the directory for crash logs relative to .pathwing
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10
)

// crashContext stores context captured before a panic. Answers are
// truncated; they can contain whatever the user typed.
type crashContext struct {
	mu         sync.RWMutex
	command    string
	stage      string
	lastAnswer string
	version    string
	basePath   string
}

var globalContext = &crashContext{}

// SetBasePath sets the base path for crash logs (typically the .pathwing directory).
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetStage records the pipeline stage for crash context.
func SetStage(stage string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.stage = stage
}

// SetLastAnswer records the most recent user answer for crash context.
func SetLastAnswer(answer string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastAnswer = truncateForLog(strings.TrimSpace(answer), 500)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		path, err := writeCrashLog(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
			fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, debug.Stack())
		} else {
			fmt.Fprintf(os.Stderr, "\nPathWing encountered an unexpected error.\n")
			fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n", path)
		}
		os.Exit(1)
	}
}

// writeCrashLog writes the crash report and returns its path.
func writeCrashLog(panicValue any) (string, error) {
	dir := getCrashLogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}
	if err := cleanOldCrashLogs(dir); err != nil {
		// Non-fatal, continue with writing
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("crash_%s.log", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(formatCrashLog(now, panicValue)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".pathwing"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func formatCrashLog(t time.Time, panicValue any) string {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	divider := strings.Repeat("-", 80)
	var sb strings.Builder

	sb.WriteString("PATHWING CRASH LOG\n")
	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", t.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Version:   %s\n", globalContext.version))
	sb.WriteString(fmt.Sprintf("Command:   %s\n", globalContext.command))
	sb.WriteString(fmt.Sprintf("Stage:     %s\n", globalContext.stage))
	sb.WriteString(fmt.Sprintf("Go:        %s\n", runtime.Version()))
	sb.WriteString(fmt.Sprintf("OS/Arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH))

	sb.WriteString("\nPANIC VALUE\n" + divider + "\n")
	sb.WriteString(fmt.Sprintf("%v\n", panicValue))

	sb.WriteString("\nSTACK TRACE\n" + divider + "\n")
	sb.Write(debug.Stack())

	if globalContext.lastAnswer != "" {
		sb.WriteString("\nLAST USER ANSWER\n" + divider + "\n")
		sb.WriteString(globalContext.lastAnswer + "\n")
	}

	return sb.String()
}

// cleanOldCrashLogs removes old crash logs, keeping the MaxCrashLogs most
// recent. ReadDir returns entries sorted by name, so the timestamped
// filenames come back oldest first.
func cleanOldCrashLogs(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var crashLogs []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			crashLogs = append(crashLogs, e)
		}
	}
	if len(crashLogs) <= MaxCrashLogs {
		return nil
	}

	toRemove := len(crashLogs) - MaxCrashLogs
	for i := range toRemove {
		path := filepath.Join(dir, crashLogs[i].Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", crashLogs[i].Name(), err)
		}
	}
	return nil
}
