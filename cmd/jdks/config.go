package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/git-pkgs/jdks/cache"
	"github.com/git-pkgs/jdks/fetch"
	"github.com/git-pkgs/jdks/internal/core"
)

type config struct {
	LogLevel     string
	RedisURL     string
	RedisChannel string
	GitHubToken  string
	Concurrency  int
	Timeout      time.Duration
	NextEA       int
}

func loadConfig(v *viper.Viper) config {
	return config{
		LogLevel:     v.GetString("log-level"),
		RedisURL:     v.GetString("redis-url"),
		RedisChannel: v.GetString("redis-channel"),
		GitHubToken:  v.GetString("github-token"),
		Concurrency:  v.GetInt("concurrency"),
		Timeout:      v.GetDuration("timeout"),
		NextEA:       v.GetInt("next-ea"),
	}
}

func (c config) schedule() *core.Schedule {
	if c.NextEA > 0 {
		return core.NewSchedule(c.NextEA)
	}
	return core.DefaultSchedule()
}

func (c config) cacheConfig() cache.Config {
	return cache.Config{RedisURL: c.RedisURL, Channel: c.RedisChannel}
}

func (c config) fetcher() *fetch.CircuitBreakerFetcher {
	opts := []fetch.Option{fetch.WithGitHubToken(c.GitHubToken)}
	if c.Timeout > 0 {
		opts = append(opts, fetch.WithTimeout(c.Timeout))
	}
	return fetch.NewCircuitBreakerFetcher(fetch.NewFetcher(opts...))
}
