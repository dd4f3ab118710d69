package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/velkov/taskdeck/internal/models"
)

// Type selects which archive a bucket belongs to.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

// ValidType reports whether t names a known archive type.
func ValidType(t Type) bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	}
	return false
}

const (
	filePrefix = "archive_"
	fileSuffix = ".json"
)

// BucketStore addresses archived task snapshots by (type, date key).
// Buckets are whole-file units: Write replaces the bucket's entire contents.
type BucketStore interface {
	Read(t Type, dateKey string) ([]models.Task, error)
	Write(t Type, dateKey string, tasks []models.Task) error
	Keys(t Type) ([]string, error)
}

// DirStore keeps each bucket as <root>/<type>/archive_<key>.json.
type DirStore struct {
	root string
}

func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

func (s *DirStore) path(t Type, dateKey string) string {
	return filepath.Join(s.root, string(t), filePrefix+dateKey+fileSuffix)
}

// Read returns the bucket's snapshots, or nil when the bucket file does not
// exist yet.
func (s *DirStore) Read(t Type, dateKey string) ([]models.Task, error) {
	data, err := os.ReadFile(s.path(t, dateKey))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive bucket %s/%s: %w", t, dateKey, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode archive bucket %s/%s: %w", t, dateKey, err)
	}
	return tasks, nil
}

// Write replaces the bucket file with the given snapshot list.
func (s *DirStore) Write(t Type, dateKey string, tasks []models.Task) error {
	dir := filepath.Join(s.root, string(t))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode archive bucket %s/%s: %w", t, dateKey, err)
	}
	if err := os.WriteFile(s.path(t, dateKey), data, 0o644); err != nil {
		return fmt.Errorf("write archive bucket %s/%s: %w", t, dateKey, err)
	}
	return nil
}

// Keys lists the bucket date keys present for an archive type, sorted
// descending and deduplicated. A missing directory yields an empty list.
func (s *DirStore) Keys(t Type) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, string(t)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list archive buckets for %s: %w", t, err)
	}

	var keys []string
	seen := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		key := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}
