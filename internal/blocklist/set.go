package blocklist

import (
	"iter"
	"slices"
	"strings"

	"github.com/armon/go-radix"
)

// Set is a deduplicated collection of domains.
// Keys are stored reversed (com.example.ads) so that iteration
// groups subdomains under their parent domain.
type Set struct {
	tree *radix.Tree
}

func NewSet() *Set {
	return &Set{tree: radix.New()}
}

// Add inserts the domain, recording the source it came from.
// It reports whether the domain was not already in the set.
func (s *Set) Add(domain, source string) bool {
	key := reverseFQDN(domain)
	raw, found := s.tree.Get(key)
	if !found {
		s.tree.Insert(key, []string{source})
		return true
	}

	sources := raw.([]string)
	if !slices.Contains(sources, source) {
		s.tree.Insert(key, append(sources, source))
	}
	return false
}

func (s *Set) Has(domain string) bool {
	_, found := s.tree.Get(reverseFQDN(domain))
	return found
}

func (s *Set) Len() int {
	return s.tree.Len()
}

// Sources returns the sources that listed the domain, in the order seen.
func (s *Set) Sources(domain string) []string {
	raw, found := s.tree.Get(reverseFQDN(domain))
	if !found {
		return nil
	}
	return slices.Clone(raw.([]string))
}

// Overlap counts the domains listed by more than one source.
func (s *Set) Overlap() int {
	n := 0
	s.tree.Walk(func(_ string, raw interface{}) bool {
		if len(raw.([]string)) > 1 {
			n++
		}
		return false
	})
	return n
}

// All iterates over the domains in reversed-label order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.tree.Walk(func(key string, _ interface{}) bool {
			return !yield(reverseFQDN(key))
		})
	}
}

// Reverse domain for better tree structure
// e.g., ads.example.com -> com.example.ads
func reverseFQDN(fqdn string) string {
	parts := strings.Split(fqdn, ".")
	slices.Reverse(parts)
	return strings.Join(parts, ".")
}
