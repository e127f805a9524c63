package config

import (
	"net"
	"strings"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/retry"
)

// Validate checks a configuration after defaults have been applied.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Site.Title) == "" {
		return ferrors.ValidationError("site title is required").
			WithContext("field", "site.title").
			Build()
	}
	if cfg.Content.NavFile != "" && cfg.Content.Directory == "" {
		return ferrors.ValidationError("content.nav_file requires content.directory").
			WithContext("field", "content.nav_file").
			Build()
	}
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		return ferrors.ValidationError("output directory is required").
			WithContext("field", "output.directory").
			Build()
	}
	if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
		return ferrors.ValidationError("server address must be host:port").
			WithContext("field", "server.addr").
			WithContext("value", cfg.Server.Addr).
			WithCause(err).
			Build()
	}
	if err := validateReload(cfg.Server.Reload); err != nil {
		return err
	}
	return nil
}

func validateReload(r ReloadConfig) error {
	p := retry.Policy{Mode: r.Backoff, Initial: r.InitialDelay, Max: r.MaxDelay}
	if r.MaxRetries != nil {
		p.MaxRetries = *r.MaxRetries
	}
	if err := p.Validate(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid server.reload settings").
			WithContext("field", "server.reload").
			Build()
	}
	return nil
}
