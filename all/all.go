// Package all imports every supported distribution adapter.
//
// Import this package for its side effects to register all distributions:
//
//	import (
//		"github.com/git-pkgs/jdks"
//		_ "github.com/git-pkgs/jdks/all"
//	)
//
//	// Now all distributions are available
//	dists := jdks.SupportedDistributions()
//	// ["bisheng", "corretto", "debian", "dragonwell", ...]
package all

import (
	_ "github.com/git-pkgs/jdks/internal/bisheng"
	_ "github.com/git-pkgs/jdks/internal/corretto"
	_ "github.com/git-pkgs/jdks/internal/debian"
	_ "github.com/git-pkgs/jdks/internal/dragonwell"
	_ "github.com/git-pkgs/jdks/internal/gluon"
	_ "github.com/git-pkgs/jdks/internal/graalvm"
	_ "github.com/git-pkgs/jdks/internal/jetbrains"
	_ "github.com/git-pkgs/jdks/internal/kona"
	_ "github.com/git-pkgs/jdks/internal/liberica"
	_ "github.com/git-pkgs/jdks/internal/mandrel"
	_ "github.com/git-pkgs/jdks/internal/microsoft"
	_ "github.com/git-pkgs/jdks/internal/openjdk"
	_ "github.com/git-pkgs/jdks/internal/openlogic"
	_ "github.com/git-pkgs/jdks/internal/oracle"
	_ "github.com/git-pkgs/jdks/internal/redhat"
	_ "github.com/git-pkgs/jdks/internal/sapmachine"
	_ "github.com/git-pkgs/jdks/internal/semeru"
	_ "github.com/git-pkgs/jdks/internal/temurin"
	_ "github.com/git-pkgs/jdks/internal/trava"
	_ "github.com/git-pkgs/jdks/internal/zulu"
	_ "github.com/git-pkgs/jdks/internal/zuluprime"
)
