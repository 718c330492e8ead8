package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scottcagno/strsearch/pkg/logger"
	"github.com/scottcagno/strsearch/pkg/search"
)

// GrepOptions tunes Grep.
type GrepOptions struct {
	ShowLineNumbers bool
	ShowOffsets     bool // offset of the first match within the line
	MaxMatches      int  // stop after this many matching lines, 0 = no limit
	Logger          *logger.Logger
}

// Match is one matching line.
type Match struct {
	Path   string
	Line   int
	Offset int // of the first match within the line
	Text   []byte
}

func (m Match) format(opts GrepOptions) string {
	switch {
	case opts.ShowLineNumbers && opts.ShowOffsets:
		return fmt.Sprintf("%s:%d:%d:%s\n", m.Path, m.Line, m.Offset, m.Text)
	case opts.ShowLineNumbers:
		return fmt.Sprintf("%s:%d:%s\n", m.Path, m.Line, m.Text)
	case opts.ShowOffsets:
		return fmt.Sprintf("%s:%d:%s\n", m.Path, m.Offset, m.Text)
	}
	return fmt.Sprintf("%s:%s\n", m.Path, m.Text)
}

// Grep walks every file whose slash separated path matches the glob in path and
// writes each line containing the searcher's pattern to w. It returns the number
// of matching lines written.
func Grep(w io.Writer, s *search.Searcher[byte], path string, opts GrepOptions) (int, error) {
	if w == nil {
		w = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	var count int
	err := Scan(s, path, opts.Logger, func(m Match) error {
		if _, err := io.WriteString(w, m.format(opts)); err != nil {
			return err
		}
		count++
		if opts.MaxMatches > 0 && count >= opts.MaxMatches {
			return fs.SkipAll
		}
		return nil
	})
	return count, err
}

// Scan walks the files matching the glob in path and calls fn for every line
// containing the searcher's pattern. Returning fs.SkipAll from fn stops the walk
// without an error. Files that cannot be opened are logged and skipped.
func Scan(s *search.Searcher[byte], path string, log *logger.Logger, fn func(Match) error) error {
	if log == nil {
		log = logger.DefaultLogger
	}
	// "clean" path
	dir, file := filepath.Split(filepath.ToSlash(path))
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("filesystem: %w", err)
	}
	err := filepath.WalkDir(dir, func(lpath string, de fs.DirEntry, err error) error {
		// clean local path
		lpath = filepath.ToSlash(lpath)
		if err != nil {
			log.Warnf("skipping %q: %v", lpath, err)
			if de != nil && de.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if de.IsDir() {
			return nil
		}
		// check for local file path match
		fileMatches, err := filepath.Match(filepath.ToSlash(filepath.Join(dir, file)), lpath)
		if err != nil {
			return fmt.Errorf("filesystem: bad pattern %q: %w", path, err)
		}
		if !fileMatches {
			return nil
		}
		log.Debugf("scanning %s", lpath)
		return scanFile(s, lpath, log, fn)
	})
	if err == fs.SkipAll {
		return nil
	}
	return err
}

func scanFile(s *search.Searcher[byte], path string, log *logger.Logger, fn func(Match) error) error {
	fd, err := os.Open(path)
	if err != nil {
		log.Warnf("skipping %q: %v", path, err)
		return nil
	}
	defer fd.Close()
	err = ScanReader(s, fd, func(line int, offset int, text []byte) error {
		return fn(Match{Path: path, Line: line, Offset: offset, Text: text})
	})
	if err != nil && err != fs.SkipAll {
		return fmt.Errorf("filesystem: %s: %w", path, err)
	}
	return err
}

// ScanReader calls fn with the 1-based line number, the offset of the first
// match and the text of every line of r that contains the searcher's pattern.
// The text is only valid until fn returns.
func ScanReader(s *search.Searcher[byte], r io.Reader, fn func(line, offset int, text []byte) error) error {
	sc, ln := bufio.NewScanner(r), 1
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if n := search.Search(sc.Bytes(), s); n != search.NotFound {
			if err := fn(ln, n, sc.Bytes()); err != nil {
				return err
			}
		}
		ln++
	}
	return sc.Err()
}
