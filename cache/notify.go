package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/git-pkgs/jdks/internal/core"
)

// Notifier is told about packages that were not known before.
type Notifier interface {
	Notify(ctx context.Context, pkgs []*core.Package) error
}

// LogNotifier logs each new package at info level.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, pkgs []*core.Package) error {
	for _, p := range pkgs {
		slog.Info("new package",
			"distribution", p.Distribution,
			"filename", p.Filename,
			"java_version", p.JavaVersion.String(),
			"os", p.OperatingSystem,
			"arch", p.Architecture,
		)
	}
	return nil
}

// Notifiers fans out to every notifier and joins their errors.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, pkgs []*core.Package) error {
	if len(pkgs) == 0 {
		return nil
	}
	var errs []error
	for _, n := range ns {
		if err := n.Notify(ctx, pkgs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, pkgs []*core.Package) error

func (f NotifierFunc) Notify(ctx context.Context, pkgs []*core.Package) error {
	return f(ctx, pkgs)
}
