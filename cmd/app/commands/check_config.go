package commands

import (
	"fmt"
	"io"

	"github.com/atluixx/lynkt/internal/config"
)

// RunCheckConfig validates cfg and writes a short report to w.
// Secret values are reported as set or missing, never printed.
func RunCheckConfig(cfg *config.Config, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "database driver:   %s\n", cfg.DBDriver)
	_, _ = fmt.Fprintf(w, "listen address:    %s:%d\n", cfg.ServerHost, cfg.ServerPort)
	_, _ = fmt.Fprintf(w, "jwt secret:        %s\n", presence(cfg.JWTSecret))
	_, _ = fmt.Fprintf(w, "frontend secret:   %s\n", presence(cfg.FrontendSecret))
	_, _ = fmt.Fprintf(w, "token expiration:  %s\n", cfg.TokenExpiration)
	_, _ = fmt.Fprintf(w, "cookie:            secure=%t samesite=%s\n", cfg.CookieSecure, cfg.CookieSameSite)
	if cfg.MetricsEnabled {
		_, _ = fmt.Fprintf(w, "metrics:           enabled on port %d\n", cfg.MetricsPort)
	} else {
		_, _ = fmt.Fprintln(w, "metrics:           disabled")
	}

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(w, "status:            invalid")
		return err
	}

	_, _ = fmt.Fprintln(w, "status:            ok")
	return nil
}

func presence(value string) string {
	if value == "" {
		return "missing"
	}
	return "set"
}
