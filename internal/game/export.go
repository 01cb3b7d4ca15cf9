package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportRound appends one finished round to the results text file. The file
// gets a session header before a session's first round so multiple sessions
// can share one file.
func ExportRound(sessionID string, rec RoundRecord, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fileExists := false
	if _, err := os.Stat(filename); err == nil {
		fileExists = true
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder

	if !fileExists || rec.Index == 1 {
		if fileExists {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("Which Flag? Results - Session %s\n", sessionID))
		sb.WriteString(fmt.Sprintf("Started: %s\n", rec.ShownAt.Format("2006-01-02 15:04:05")))
		sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	}

	sb.WriteString(fmt.Sprintf("Round %d: %s (%s)\n", rec.Index, rec.LocalizedName, rec.Name))
	sb.WriteString(fmt.Sprintf("  flag:  %s\n", rec.ImageURL))
	sb.WriteString(fmt.Sprintf("  shown: %s\n", rec.ShownAt.Format("2006-01-02 15:04:05")))

	if _, err := file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}
