package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
)

const githubHost = "github.com"

var (
	// ErrInvalidRepositoryURL is returned when no owner/name can be read from a URL.
	ErrInvalidRepositoryURL = errors.New("invalid repository URL")

	// ErrUnsupportedHost is returned for repositories hosted outside GitHub.
	ErrUnsupportedHost = errors.New("repository is not hosted on GitHub")
)

var (
	// scpPattern matches the scp-like SSH form, e.g. git@github.com:owner/name.git.
	scpPattern       = regexp.MustCompile(`^[\w.-]+@([\w.-]+):(.+)$`)
	otherHostPattern = regexp.MustCompile(`^(gitlab|bitbucket|gist):`)
	segmentPattern   = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// ParseRepositoryURL extracts the owner and name of a GitHub repository from
// the repository field of a package manifest. It accepts HTTPS, git://, SSH
// and scp-like URLs with or without a .git suffix or git+ prefix, as well as
// the npm shorthands "github:owner/name" and "owner/name".
func ParseRepositoryURL(raw string) (domain.Coordinates, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "git+")

	var host, path string
	switch {
	case s == "":
		return domain.Coordinates{}, fmt.Errorf("%w: empty", ErrInvalidRepositoryURL)
	case strings.HasPrefix(s, "github:"):
		host, path = githubHost, strings.TrimPrefix(s, "github:")
	case otherHostPattern.MatchString(s):
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrUnsupportedHost, raw)
	case strings.Contains(s, "://"):
		u, err := url.Parse(s)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: %q: %v", ErrInvalidRepositoryURL, raw, err)
		}
		host, path = u.Hostname(), u.Path
	case scpPattern.MatchString(s):
		m := scpPattern.FindStringSubmatch(s)
		host, path = m[1], m[2]
	case strings.Count(s, "/") == 1 && !strings.Contains(s, ":"):
		host, path = githubHost, s
	default:
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, raw)
	}

	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host != githubHost {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrUnsupportedHost, raw)
	}

	path, _, _ = strings.Cut(path, "#")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, raw)
	}
	coords := domain.Coordinates{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], ".git"),
	}
	if !segmentPattern.MatchString(coords.Owner) || !segmentPattern.MatchString(coords.Name) {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, raw)
	}
	return coords, nil
}
