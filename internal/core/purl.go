package core

import (
	"fmt"

	packageurl "github.com/package-url/packageurl-go"
)

// PURL returns a package URL for the record, e.g.
// pkg:generic/zulu@17.0.6?arch=x64&archive=zip&os=windows&type=jdk
func (p *Package) PURL() string {
	q := map[string]string{
		"arch":    string(p.Architecture),
		"os":      string(p.OperatingSystem),
		"archive": string(p.ArchiveType),
		"type":    string(p.PackageType),
	}
	if p.ReleaseStatus == StatusEA {
		q["status"] = string(StatusEA)
	}
	if p.DirectDownloadURI != "" {
		q["download_url"] = p.DirectDownloadURI
	}
	for k, v := range q {
		if v == "" {
			delete(q, k)
		}
	}
	u := packageurl.NewPackageURL(packageurl.TypeGeneric, "", string(p.Distribution),
		p.JavaVersion.String(), packageurl.QualifiersFromMap(q), "")
	return u.ToString()
}

// FilterFromPURL turns a package URL such as
// pkg:generic/temurin@17?os=linux&arch=x64 into a distribution and filter.
// Qualifiers that are absent leave the dimension unconstrained.
func FilterFromPURL(purl string) (Distribution, Filter, error) {
	u, err := packageurl.FromString(purl)
	if err != nil {
		return "", Filter{}, err
	}
	if u.Name == "" {
		return "", Filter{}, fmt.Errorf("PURL has no distribution: %s", purl)
	}

	var f Filter
	if u.Version != "" {
		f.Version = ParseVersionNumber(u.Version)
	}
	q := u.Qualifiers.Map()
	if v := q["arch"]; v != "" {
		f.Architecture, _ = Match(v, ArchitectureTable)
	}
	if v := q["os"]; v != "" {
		f.OperatingSystem, _ = Match(v, OperatingSystemTable)
	}
	if v := q["archive"]; v != "" {
		f.ArchiveType, _ = Match(v, ArchiveTypeTable)
	}
	if v := q["type"]; v != "" {
		f.PackageType, _ = Match(v, PackageTypeTable)
	}
	if v := q["status"]; v != "" {
		f.ReleaseStatus, _ = Match(v, ReleaseStatusTable)
	}
	f.Latest = q["latest"] == "true"
	return Distribution(u.Name), f, nil
}
