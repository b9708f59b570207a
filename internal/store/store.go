package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	dailySuffix    = "_summary.txt"
	masterFilename = "master_summary.txt"
	reportPrefix   = "Weekly_Report_"
)

// EnsureLayout creates every partition directory, plus the prompts
// directory so operators have a place to drop prompt overrides.
func (s *implStore) EnsureLayout() error {
	for _, dir := range []string{s.processedDir, s.dailyDir, s.masterDir, s.reportsDir, s.promptsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func (s *implStore) SaveProcessed(ctx context.Context, day, content string) error {
	path := filepath.Join(s.processedDir, day+".txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write processed transcript: %w", err)
	}
	s.logger.Debug(ctx, "Saved processed transcript: %s", path)
	return nil
}

// LookupProcessed finds the processed document for a day selector: an
// exact <day>.txt match wins, then the first file whose name contains
// the selector. The returned Processed carries the file's full day
// identity, which may be longer than the selector.
func (s *implStore) LookupProcessed(ctx context.Context, day string) (Processed, bool, error) {
	exact := filepath.Join(s.processedDir, day+".txt")
	if data, err := os.ReadFile(exact); err == nil {
		return Processed{Day: day, Content: string(data)}, true, nil
	}

	names, err := listWithSuffix(s.processedDir, ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Processed{}, false, nil
		}
		return Processed{}, false, err
	}

	for _, name := range names {
		if !strings.Contains(name, day) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.processedDir, name))
		if err != nil {
			return Processed{}, false, fmt.Errorf("read processed transcript: %w", err)
		}
		return Processed{
			Day:     strings.TrimSuffix(name, ".txt"),
			Content: string(data),
		}, true, nil
	}

	return Processed{}, false, nil
}

// ClearProcessed removes every .txt file from the processed partition
// so the partition tracks the current raw inputs. Other files are left
// alone.
func (s *implStore) ClearProcessed(ctx context.Context) error {
	names, err := listWithSuffix(s.processedDir, ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, name := range names {
		if err := os.Remove(filepath.Join(s.processedDir, name)); err != nil {
			s.logger.Warn(ctx, "Could not remove previous processed file %s: %v", name, err)
		}
	}
	return nil
}

func (s *implStore) SaveDaily(ctx context.Context, day, content string) error {
	path := filepath.Join(s.dailyDir, day+dailySuffix)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write daily summary: %w", err)
	}
	s.logger.Info(ctx, "Saved daily summary: %s", path)
	return nil
}

// LoadDailies returns every persisted daily summary sorted by day
// identity ascending.
func (s *implStore) LoadDailies(ctx context.Context) ([]Daily, error) {
	names, err := listWithSuffix(s.dailyDir, dailySuffix)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var dailies []Daily
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dailyDir, name))
		if err != nil {
			return nil, fmt.Errorf("read daily summary: %w", err)
		}
		dailies = append(dailies, Daily{
			Day:     strings.TrimSuffix(name, dailySuffix),
			Content: strings.TrimSpace(string(data)),
		})
	}

	return dailies, nil
}

func (s *implStore) SaveMaster(ctx context.Context, content string) error {
	path := filepath.Join(s.masterDir, masterFilename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write master summary: %w", err)
	}
	s.logger.Info(ctx, "Saved master summary: %s", path)
	return nil
}

// ReportPath returns the timestamped path for a new report. Reports are
// never overwritten, each run gets its own file.
func (s *implStore) ReportPath(now time.Time) string {
	name := fmt.Sprintf("%s%s.docx", reportPrefix, now.Format("20060102_150405"))
	return filepath.Join(s.reportsDir, name)
}

func listWithSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
