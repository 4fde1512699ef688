package queries

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"oasis-backend/internal/pkg/errs"
)

// TravelPackage is a catalog entry. The catalog is read-only reference
// data loaded once at startup from a JSON file.
type TravelPackage struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	PriceMajor  int64    `json:"price"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	ImageURL    string   `json:"image_url"`
}

type PackageQueries interface {
	List() []TravelPackage
	Get(slug string) (*TravelPackage, error)
	Search(term string) []TravelPackage
}

type packageQueriesImpl struct {
	packages []TravelPackage
	bySlug   map[string]int
}

// LoadPackageQueries reads the catalog file and indexes it. A missing or
// malformed file is a startup error, not a per-request one.
func LoadPackageQueries(path string) (PackageQueries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read package catalog")
	}

	var packages []TravelPackage
	if err := json.Unmarshal(raw, &packages); err != nil {
		return nil, errs.Wrap(err, "parse package catalog")
	}

	bySlug := make(map[string]int, len(packages))
	for i := range packages {
		packages[i].Slug = strings.ToLower(strings.TrimSpace(packages[i].Slug))
		p := packages[i]
		if p.Slug == "" || p.Name == "" {
			return nil, errs.New("catalog entry missing slug or name")
		}
		if _, dup := bySlug[p.Slug]; dup {
			return nil, errs.New("duplicate catalog slug: " + p.Slug)
		}
		bySlug[p.Slug] = i
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	// re-index after sorting
	for i, p := range packages {
		bySlug[p.Slug] = i
	}

	return &packageQueriesImpl{packages: packages, bySlug: bySlug}, nil
}

func (q *packageQueriesImpl) List() []TravelPackage {
	out := make([]TravelPackage, len(q.packages))
	copy(out, q.packages)
	return out
}

func (q *packageQueriesImpl) Get(slug string) (*TravelPackage, error) {
	i, ok := q.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, errs.Mark(errs.New("no package with slug "+slug), errs.ErrPackageNotFound)
	}
	p := q.packages[i]
	return &p, nil
}

// Search matches the term case-insensitively against name, destination
// and description. An empty term returns the full catalog.
func (q *packageQueriesImpl) Search(term string) []TravelPackage {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return q.List()
	}

	var out []TravelPackage
	for _, p := range q.packages {
		haystack := strings.ToLower(p.Name + " " + p.Destination + " " + p.Description)
		if strings.Contains(haystack, term) {
			out = append(out, p)
		}
	}
	return out
}
