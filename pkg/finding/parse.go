package finding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/afero"
)

// ErrNoFindingHeader is returned when a report has text before its first finding header.
var ErrNoFindingHeader = errors.New("the report doesn't start with a finding header")

var headerPattern = regexp.MustCompile(`^[^:]*:[0-9]+:`)

// IsHeader reports whether line starts a new finding.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// Parse splits a report into finding records.
// Line terminators are kept, so joining the returned records reproduces the input.
func Parse(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	records := []string{}
	for {
		line, err := reader.ReadString('\n')
		switch {
		case line == "":
		case IsHeader(line):
			records = append(records, line)
		case len(records) == 0:
			return nil, ErrNoFindingHeader
		default:
			records[len(records)-1] += line
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("read a report: %w", err)
		}
	}
}

// ReadFile reads and parses the report at path.
func ReadFile(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open a report: %w", err)
	}
	defer f.Close()
	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse a report %s: %w", path, err)
	}
	return records, nil
}
