package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// Blocklist is a set of lowercased words excluded from the game dictionary.
type Blocklist map[string]struct{}

// Contains reports whether the word's lowercased form is blocked.
func (b Blocklist) Contains(word string) bool {
	_, ok := b[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// LoadBlocklist reads a blocklist file, one word per line, lowercased. A
// missing file yields an empty blocklist with found=false so the caller can
// warn instead of aborting.
func LoadBlocklist(path string) (list Blocklist, found bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Blocklist{}, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only blocklist.
			_ = cerr
		}
	}()

	list = Blocklist{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		list[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// Filter returns the words whose lowercased form is absent from the
// blocklist, preserving input order, along with the number removed.
func Filter(words []string, blocklist Blocklist) (kept []string, filtered int) {
	kept = make([]string, 0, len(words))
	for _, word := range words {
		if blocklist.Contains(word) {
			filtered++
			continue
		}
		kept = append(kept, word)
	}
	return kept, filtered
}
