package core

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var noiseSuffixes = []string{
	".sha256", ".sha256.txt", ".sha256sum", ".sha256sum.txt", ".sha512",
	".sha512.txt", ".sha1", ".md5", ".sig", ".asc", ".gpg", ".json",
	".txt", ".sbom", ".spdx", ".pem", ".yml", ".yaml", ".html", ".sh",
	".checksum", ".pub",
}

var noiseMarkers = []string{
	"debugimage", "debuginfo", "debug-symbols", "-debug", "_debug", "-dbg",
	"symbols", "-src.", "_src.", "-src-", "sources", "source.", "testimage",
	"static-libs", "-sbom", "_sbom", "jmods",
}

// IsNoise reports whether name is a checksum, signature, symbol, source or
// metadata file rather than an installable artifact.
func IsNoise(name string) bool {
	n := strings.ToLower(name)
	for _, s := range noiseSuffixes {
		if strings.HasSuffix(n, s) {
			return true
		}
	}
	for _, m := range noiseMarkers {
		if strings.Contains(n, m) {
			return true
		}
	}
	return false
}

// FilenameFromURL returns the last path element of a URL without query.
func FilenameFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	if idx := strings.LastIndex(raw, "/"); idx >= 0 {
		return raw[idx+1:]
	}
	return raw
}

// Link is a named downloadable file found in a payload.
type Link struct {
	Name string
	URL  string
	Size int64
}

var hrefPattern = regexp.MustCompile(`(?i)href\s*=\s*["']([^"'#]+)["']`)

// HTMLLinks returns every href in html whose filename matches pattern,
// resolved against base. Duplicates are dropped, document order is kept.
func HTMLLinks(html, base string, pattern *regexp.Regexp) []Link {
	baseURL, _ := url.Parse(base)
	var links []Link
	seen := make(map[string]bool)
	for _, m := range hrefPattern.FindAllStringSubmatch(html, -1) {
		href := strings.TrimSpace(m[1])
		if baseURL != nil {
			if ref, err := url.Parse(href); err == nil {
				href = baseURL.ResolveReference(ref).String()
			}
		}
		name := FilenameFromURL(href)
		if pattern != nil && !pattern.MatchString(name) {
			continue
		}
		if seen[href] {
			continue
		}
		seen[href] = true
		links = append(links, Link{Name: name, URL: href})
	}
	return links
}

// TextLinks returns every URL in text (for example a markdown release body)
// matching pattern.
func TextLinks(text string, pattern *regexp.Regexp) []Link {
	var links []Link
	seen := make(map[string]bool)
	for _, u := range pattern.FindAllString(text, -1) {
		u = strings.TrimRight(u, ").,>\"'")
		if seen[u] {
			continue
		}
		seen[u] = true
		links = append(links, Link{Name: FilenameFromURL(u), URL: u})
	}
	return links
}

// Release is the subset of a GitHub release used by adapters.
type Release struct {
	Tag        string
	Name       string
	Prerelease bool
	Draft      bool
	Body       string
	Assets     []Link
}

// GitHubReleases reads a GitHub releases payload: either the array
// returned by /releases or a single release object.
func GitHubReleases(p Payload) []Release {
	var releases []Release
	for _, r := range p.Items("") {
		if !r.IsObject() {
			continue
		}
		rel := Release{
			Tag:        r.Get("tag_name").String(),
			Name:       r.Get("name").String(),
			Prerelease: r.Get("prerelease").Bool(),
			Draft:      r.Get("draft").Bool(),
			Body:       r.Get("body").String(),
		}
		r.Get("assets").ForEach(func(_, a gjson.Result) bool {
			name := a.Get("name").String()
			link := a.Get("browser_download_url").String()
			if name != "" && link != "" {
				rel.Assets = append(rel.Assets, Link{Name: name, URL: link, Size: a.Get("size").Int()})
			}
			return true
		})
		releases = append(releases, rel)
	}
	return releases
}

var checksumSuffixes = []string{
	".sha256.txt", ".sha256sum.txt", ".sha256sum", ".sha256",
	".sha512.txt", ".sha512", ".sha1", ".md5", ".checksum",
}

var signatureSuffixes = []string{".sig", ".asc", ".gpg"}

// AttachChecksums is the second pass over a payload: checksum and
// signature siblings are attached to already admitted packages whose
// filename they contain.
func AttachChecksums(pkgs []*Package, siblings []Link) {
	for _, s := range siblings {
		lower := strings.ToLower(s.Name)
		if base, ok := trimAnySuffix(lower, checksumSuffixes); ok {
			algo, _ := ResolveHashAlgorithm(lower)
			for _, p := range matching(pkgs, base) {
				p.ChecksumURI = s.URL
				p.ChecksumType = algo
			}
			continue
		}
		if base, ok := trimAnySuffix(lower, signatureSuffixes); ok {
			sig, _ := ResolveSignatureType(lower)
			for _, p := range matching(pkgs, base) {
				p.SignatureURI = s.URL
				p.SignatureType = sig
			}
		}
	}
}

func trimAnySuffix(s string, suffixes []string) (string, bool) {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf), true
		}
	}
	return s, false
}

func matching(pkgs []*Package, base string) []*Package {
	var out []*Package
	for _, p := range pkgs {
		name := strings.ToLower(p.Filename)
		if name == "" {
			continue
		}
		if strings.Contains(base, name) || strings.HasPrefix(name, base+".") {
			out = append(out, p)
		}
	}
	return out
}

// KnownSet answers whether a package key has been seen before.
type KnownSet interface {
	Contains(key string) bool
}

// KeySet is an in-memory KnownSet.
type KeySet map[string]bool

// Contains implements KnownSet.
func (s KeySet) Contains(key string) bool { return s[key] }

// Add records the keys of pkgs.
func (s KeySet) Add(pkgs ...*Package) {
	for _, p := range pkgs {
		s[p.Key()] = true
	}
}

// OnlyNew returns the packages whose key is not in known, keeping order.
func OnlyNew(pkgs []*Package, known KnownSet) []*Package {
	if known == nil {
		return pkgs
	}
	out := make([]*Package, 0, len(pkgs))
	for _, p := range pkgs {
		if !known.Contains(p.Key()) {
			out = append(out, p)
		}
	}
	return out
}
