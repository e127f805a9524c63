package config

import (
	"path/filepath"

	"git.home.luguber.info/inful/shanksdocs/internal/retry"
)

const (
	DefaultTitle       = "Shanks Django - Express.js-like Framework for Django"
	DefaultDescription = "Fast, elegant, and powerful Django framework with Express.js-like routing"
	DefaultBrand       = "SHANKS"
	DefaultGitHubURL   = "https://github.com/Araryarch/shanks-django"
	DefaultOutputDir   = "./public"
	DefaultAddr        = ":8080"
	DefaultSiteDir     = "./site"
)

func applyDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = DefaultTitle
	}
	if cfg.Site.Description == "" {
		cfg.Site.Description = DefaultDescription
	}
	if cfg.Site.Brand == "" {
		cfg.Site.Brand = DefaultBrand
	}
	if cfg.Site.GitHubURL == "" {
		cfg.Site.GitHubURL = DefaultGitHubURL
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "/"
	}
	if cfg.Content.Directory != "" && cfg.Content.NavFile == "" {
		// nav.yaml sits beside the content directory, as written by init.
		cfg.Content.NavFile = filepath.Join(filepath.Dir(filepath.Clean(cfg.Content.Directory)), "nav.yaml")
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}

	reload := &cfg.Server.Reload
	def := retry.DefaultPolicy()
	if reload.Backoff == "" {
		reload.Backoff = def.Mode
	}
	if reload.InitialDelay == 0 {
		reload.InitialDelay = def.Initial
	}
	if reload.MaxDelay == 0 {
		reload.MaxDelay = def.Max
	}
	if reload.MaxRetries == nil {
		n := def.MaxRetries
		reload.MaxRetries = &n
	}
}
