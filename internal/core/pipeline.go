package core

import "regexp"

// LinkParser builds a candidate record from one link. It returns nil when
// the link is not an artifact of the distribution.
type LinkParser func(l Link) *Package

// AssetParser is a LinkParser that also sees the release the asset
// belongs to, for vendors that put the version in the tag.
type AssetParser func(rel Release, asset Link) *Package

// NewestFirst marks the collector's payload as ordered by descending
// feature version. With a latest-only filter, parsing stops at the first
// candidate below the target feature.
func (c *Collector) NewestFirst() *Collector {
	c.newestFirst = true
	return c
}

// offer runs the latest-major check and admits pkg. It returns false
// when the remaining payload cannot match.
func (c *Collector) offer(pkg *Package, size int64) bool {
	if c.filter.FeatureMismatch(pkg.JavaVersion) {
		c.Skip(pkg.Filename, ReasonFilter)
		return !(c.newestFirst && pkg.JavaVersion.Feature() < c.filter.Feature())
	}
	if pkg.Size == 0 {
		pkg.Size = size
	}
	c.Add(pkg)
	return true
}

// ParseLinks runs the shared pipeline over links: noise is set aside,
// every other link goes through parse, and checksum and signature
// siblings are attached to the admitted packages afterwards.
func ParseLinks(links []Link, c *Collector, parse LinkParser) []*Package {
	var siblings []Link
	for _, l := range links {
		if IsNoise(l.Name) {
			siblings = append(siblings, l)
			continue
		}
		pkg := parse(l)
		if pkg == nil {
			continue
		}
		if !c.offer(pkg, l.Size) {
			break
		}
	}
	pkgs := c.Packages()
	AttachChecksums(pkgs, siblings)
	return pkgs
}

// ParseReleases is ParseLinks over the assets of a GitHub releases
// payload. Draft releases are ignored.
func ParseReleases(p Payload, c *Collector, parse AssetParser) []*Package {
	return parseReleaseLinks(p, c, parse, func(rel Release) []Link { return rel.Assets })
}

// ParseReleaseBodies is ParseReleases for vendors that link their
// artifacts from the release notes instead of uploading assets. Links in
// each body are matched against pattern.
func ParseReleaseBodies(p Payload, c *Collector, pattern *regexp.Regexp, parse AssetParser) []*Package {
	return parseReleaseLinks(p, c, parse, func(rel Release) []Link { return TextLinks(rel.Body, pattern) })
}

func parseReleaseLinks(p Payload, c *Collector, parse AssetParser, links func(Release) []Link) []*Package {
	var siblings []Link
releases:
	for _, rel := range GitHubReleases(p) {
		if rel.Draft {
			continue
		}
		for _, l := range links(rel) {
			if IsNoise(l.Name) {
				siblings = append(siblings, l)
				continue
			}
			pkg := parse(rel, l)
			if pkg == nil {
				continue
			}
			if !c.offer(pkg, l.Size) {
				break releases
			}
		}
	}
	pkgs := c.Packages()
	AttachChecksums(pkgs, siblings)
	return pkgs
}
