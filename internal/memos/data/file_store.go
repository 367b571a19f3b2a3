package data

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"memo/internal/logs"
)

var (
	mu sync.RWMutex
)

const memoExt = ".md"

// FileStore keeps one markdown file per memo in Dir. Each file starts with a
// YAML frontmatter block holding the id, date, color and insertion sequence,
// followed by a blank line and the raw content.
type FileStore struct {
	Dir string
}

type memoFrontmatter struct {
	ID       string `yaml:"id"`
	Date     string `yaml:"date"`
	ColorHex string `yaml:"color_hex"`
	Seq      int64  `yaml:"seq,omitempty"`
}

// memoEntry is a parsed memo file along with its position in the store.
type memoEntry struct {
	memo Memo
	seq  int64
	path string
}

// NewFileStore creates dir if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating memo directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// MemoFilename returns the file name a memo is stored under.
func MemoFilename(m Memo) string {
	return m.DateString() + "-" + m.ShortID() + memoExt
}

func (s *FileStore) Insert(_ context.Context, memo Memo) (string, error) {
	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}

	mu.Lock()
	defer mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return "", err
	}
	var seq int64
	for _, e := range entries {
		if e.memo.ID == memo.ID {
			return "", fmt.Errorf("%w: %s", ErrDuplicateID, memo.ID)
		}
		if e.seq > seq {
			seq = e.seq
		}
	}
	seq++

	path := filepath.Join(s.Dir, MemoFilename(memo))
	if fileExists(path) {
		// same day and id prefix; fall back to the full id
		path = filepath.Join(s.Dir, memo.DateString()+"-"+memo.ID+memoExt)
		if fileExists(path) {
			return "", fmt.Errorf("%s already exists", path)
		}
	}

	if err := writeMemoFile(memo, seq, path); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	logs.Logger.Debugf("Stored memo %s at %s (seq %d)", memo.ID, path, seq)
	return memo.ID, nil
}

// List returns memos by insertion sequence. Files written without a sequence
// sort first, by date and then id.
func (s *FileStore) List(_ context.Context) ([]Memo, error) {
	mu.RLock()
	defer mu.RUnlock()

	entries, err := s.readEntries()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.seq != b.seq {
			return a.seq < b.seq
		}
		if !a.memo.Date.Equal(b.memo.Date) {
			return a.memo.Date.Before(b.memo.Date)
		}
		return a.memo.ID < b.memo.ID
	})

	memos := make([]Memo, 0, len(entries))
	for _, e := range entries {
		memos = append(memos, e.memo)
	}
	return memos, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.memo.ID != id {
			continue
		}
		if err := os.Remove(e.path); err != nil {
			return fmt.Errorf("error removing %s: %w", e.path, err)
		}
		logs.Logger.Infof("Deleted memo %s (%s)", id, e.path)
		return nil
	}
	return ErrMemoNotFound
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) memoPaths() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.Dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), memoExt) {
			continue
		}
		paths = append(paths, filepath.Join(s.Dir, e.Name()))
	}
	return paths, nil
}

// readEntries parses every memo file in Dir, skipping malformed ones.
func (s *FileStore) readEntries() ([]memoEntry, error) {
	paths, err := s.memoPaths()
	if err != nil {
		return nil, err
	}

	entries := make([]memoEntry, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			logs.Logger.Warnf("Skipping %s: %v", path, err)
			continue
		}
		m, fm, err := parseMemoFile(content)
		if err != nil {
			logs.Logger.Warnf("Skipping %s: %v", path, err)
			continue
		}
		entries = append(entries, memoEntry{memo: m, seq: fm.Seq, path: path})
	}
	return entries, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteMemo writes a memo file with frontmatter and no insertion sequence.
func WriteMemo(m Memo, path string) error {
	return writeMemoFile(m, 0, path)
}

func writeMemoFile(m Memo, seq int64, path string) error {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	yamlBytes, err := yaml.Marshal(memoFrontmatter{
		ID:       m.ID,
		Date:     m.Date.Format(time.RFC3339Nano),
		ColorHex: m.ColorHex,
		Seq:      seq,
	})
	if err != nil {
		return err
	}
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString(m.Content)

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadMemo reads a memo file written by WriteMemo.
func ReadMemo(path string) (Memo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Memo{}, err
	}
	return ParseMemo(content)
}

// ParseMemo splits frontmatter from content. The frontmatter must carry an id
// and an RFC 3339 date.
func ParseMemo(content []byte) (Memo, error) {
	m, _, err := parseMemoFile(content)
	return m, err
}

func parseMemoFile(content []byte) (Memo, memoFrontmatter, error) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return Memo{}, memoFrontmatter{}, fmt.Errorf("missing frontmatter")
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return Memo{}, memoFrontmatter{}, fmt.Errorf("unterminated frontmatter")
	}

	var fm memoFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return Memo{}, memoFrontmatter{}, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if fm.ID == "" {
		return Memo{}, memoFrontmatter{}, fmt.Errorf("frontmatter has no id")
	}

	date, err := time.Parse(time.RFC3339Nano, fm.Date)
	if err != nil {
		return Memo{}, memoFrontmatter{}, fmt.Errorf("invalid date %q: %w", fm.Date, err)
	}

	body := string(bytes.Join(lines[fmEnd+1:], []byte("\n")))
	body = strings.TrimPrefix(body, "\n")

	return Memo{
		ID:       fm.ID,
		Content:  body,
		Date:     date,
		ColorHex: fm.ColorHex,
	}, fm, nil
}
