package crawler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/dict-crawler/internal/domain"
)

// ReadWordList reads one word per line. Lines are trimmed; blank lines and
// lines starting with '#' are skipped, as are repeats of an earlier word
// (compared after normalization).
func ReadWordList(r io.Reader) ([]string, error) {
	var (
		words []string
		seen  = make(map[string]bool)
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := domain.NormalizeText(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
