// Package output persists processed pages as skill directories, one
// directory per skill containing a single SKILL.md file.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AmanSikarwar/agent-skills-generator/internal/logger"
	"github.com/AmanSikarwar/agent-skills-generator/internal/processor"
)

// SkillFileName is the document written inside each skill directory.
const SkillFileName = "SKILL.md"

// Writer writes skill documents under a root output directory.
type Writer struct {
	dir    string
	resume bool
}

// NewWriter creates a writer rooted at dir. With resume enabled,
// skills that already exist on disk are skipped instead of overwritten.
func NewWriter(dir string, resume bool) *Writer {
	return &Writer{dir: dir, resume: resume}
}

// Dir returns the root output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write persists a processed page as <dir>/<skill-name>/SKILL.md and
// returns the skill directory path. Two pages sanitizing to the same
// skill name overwrite each other; the collision is logged, last write
// wins.
func (w *Writer) Write(page *processor.ProcessedPage) (path string, skipped bool, err error) {
	skillDir := filepath.Join(w.dir, page.Metadata.SkillName)
	skillPath := filepath.Join(skillDir, SkillFileName)

	if _, statErr := os.Stat(skillPath); statErr == nil {
		if w.resume {
			logger.Debug("skill already exists, skipping", "skill", page.Metadata.SkillName)
			return skillDir, true, nil
		}
		logger.Warn("overwriting existing skill", "skill", page.Metadata.SkillName, "url", page.Metadata.URL)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create skill directory %s: %w", skillDir, err)
	}
	if err := os.WriteFile(skillPath, []byte(page.SkillDoc), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write %s: %w", skillPath, err)
	}

	logger.Debug("wrote skill", "skill", page.Metadata.SkillName, "path", skillPath, "bytes", len(page.SkillDoc))
	return skillDir, false, nil
}

// CleanDir removes every skill directory under dir and returns how many
// were removed. Only directories containing a SKILL.md are touched, so
// unrelated files survive. A missing dir cleans zero skills.
func CleanDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		skillDir := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(filepath.Join(skillDir, SkillFileName)); err != nil {
			continue
		}
		if err := os.RemoveAll(skillDir); err != nil {
			return removed, fmt.Errorf("failed to remove skill directory %s: %w", skillDir, err)
		}
		removed++
	}
	return removed, nil
}
