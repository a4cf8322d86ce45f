package lists

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/st3v3nmw/baker/internal/types"
)

// FromFile reads source URLs from a newline-separated file.
func FromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sources file: %w", err)
	}
	defer file.Close()

	urls, err := readSources(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file %s: %w", path, err)
	}

	return urls, nil
}

// FromCategories reads the bundled source URLs of each category.
// A category whose list can't be read contributes no URLs.
func FromCategories(categories []types.Category) []string {
	var urls []string
	for _, category := range categories {
		file, err := Bundle.Open(category.Filename())
		if err != nil {
			slog.Warn("Bundled source list not found", "category", category, "error", err)
			continue
		}

		catURLs, err := readSources(file)
		file.Close()
		if err != nil {
			slog.Warn("Failed to read bundled source list", "category", category, "error", err)
			continue
		}

		slog.Debug("Loaded bundled sources", "category", category, "count", len(catURLs))
		urls = append(urls, catURLs...)
	}

	return urls
}

// Unique drops repeated URLs, keeping the first occurrence.
func Unique(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	unique := make([]string, 0, len(urls))
	for _, url := range urls {
		if seen[url] {
			continue
		}
		seen[url] = true
		unique = append(unique, url)
	}

	return unique
}

func readSources(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		urls = append(urls, line)
	}

	return urls, scanner.Err()
}
