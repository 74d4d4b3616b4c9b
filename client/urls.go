package client

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/git-pkgs/jdks/internal/core"
)

// GitHubAPI is the default endpoint for adapters backed by GitHub releases.
const GitHubAPI = "https://api.github.com"

// ReleasesPerPage is the page size requested from GitHub.
const ReleasesPerPage = 100

// Locator builds query URLs for a distribution.
type Locator interface {
	Locator(f core.Filter) string
}

// BaseLocator provides a default Locator implementation.
type BaseLocator struct {
	LocatorFn func(f core.Filter) string
}

func (b *BaseLocator) Locator(f core.Filter) string {
	if b.LocatorFn != nil {
		return b.LocatorFn(f)
	}
	return ""
}

// Fixed returns a Locator that always answers page, for vendors that
// publish everything on a single document.
func Fixed(page string) *BaseLocator {
	return &BaseLocator{LocatorFn: func(core.Filter) string { return page }}
}

// Trim removes trailing slashes from a base URL.
func Trim(base string) string {
	return strings.TrimRight(base, "/")
}

// Query joins base and path and appends the non-empty params in key order.
func Query(base, path string, params map[string]string) string {
	u := Trim(base) + "/" + strings.TrimLeft(path, "/")
	values := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := params[k]; v != "" {
			values.Set(k, v)
		}
	}
	if enc := values.Encode(); enc != "" {
		return u + "?" + enc
	}
	return u
}

// GitHubReleases returns the releases listing of owner/repo.
func GitHubReleases(base, owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", Trim(base), owner, repo, ReleasesPerPage)
}

// GitHubLatestRelease returns the latest non-prerelease of owner/repo.
func GitHubLatestRelease(base, owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", Trim(base), owner, repo)
}

// FeatureOr returns the filter's feature number, or fallback when the
// filter is unconstrained.
func FeatureOr(f core.Filter, fallback int) int {
	if n := f.Feature(); n > 0 {
		return n
	}
	return fallback
}

// StatusParam renders the filter's release status in the vocabulary of a
// vendor API, ga and ea unless overridden.
func StatusParam(f core.Filter, ga, ea string) string {
	switch f.ReleaseStatus {
	case core.StatusGA:
		return ga
	case core.StatusEA:
		return ea
	}
	return ""
}

// BuildLocators returns every non-empty locator for f keyed by
// distribution.
func BuildLocators(locators map[core.Distribution]Locator, f core.Filter) map[core.Distribution]string {
	result := make(map[core.Distribution]string)
	for d, l := range locators {
		if v := l.Locator(f); v != "" {
			result[d] = v
		}
	}
	return result
}
