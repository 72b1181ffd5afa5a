package gateway

import (
	"testing"

	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseRepositoryURL(t *testing.T) {
	react := domain.Coordinates{Owner: "facebook", Name: "react"}

	testCases := []struct {
		name        string
		raw         string
		expected    domain.Coordinates
		expectedErr error
	}{
		{name: "https", raw: "https://github.com/facebook/react", expected: react},
		{name: "https with .git", raw: "https://github.com/facebook/react.git", expected: react},
		{name: "git+https", raw: "git+https://github.com/facebook/react.git", expected: react},
		{name: "git protocol", raw: "git://github.com/facebook/react.git", expected: react},
		{name: "ssh url", raw: "ssh://git@github.com/facebook/react.git", expected: react},
		{name: "git+ssh url", raw: "git+ssh://git@github.com/facebook/react.git", expected: react},
		{name: "scp-like ssh", raw: "git@github.com:facebook/react.git", expected: react},
		{name: "www host", raw: "https://www.github.com/facebook/react", expected: react},
		{name: "monorepo subdirectory", raw: "https://github.com/facebook/react/tree/main/packages/react", expected: react},
		{name: "fragment", raw: "https://github.com/facebook/react#readme", expected: react},
		{name: "github shorthand", raw: "github:facebook/react", expected: react},
		{name: "bare shorthand", raw: "facebook/react", expected: react},
		{name: "shorthand with branch", raw: "facebook/react#v18", expected: react},
		{name: "surrounding whitespace", raw: "  https://github.com/facebook/react.git  ", expected: react},
		{name: "dotted names", raw: "https://github.com/vercel/next.js.git", expected: domain.Coordinates{Owner: "vercel", Name: "next.js"}},
		{name: "empty", raw: "", expectedErr: ErrInvalidRepositoryURL},
		{name: "owner only", raw: "https://github.com/facebook", expectedErr: ErrInvalidRepositoryURL},
		{name: "quote in name", raw: `https://github.com/facebook/re"act`, expectedErr: ErrInvalidRepositoryURL},
		{name: "gitlab url", raw: "https://gitlab.com/group/project.git", expectedErr: ErrUnsupportedHost},
		{name: "gitlab shorthand", raw: "gitlab:group/project", expectedErr: ErrUnsupportedHost},
		{name: "bitbucket ssh", raw: "git@bitbucket.org:team/repo.git", expectedErr: ErrUnsupportedHost},
		{name: "not a url", raw: "just some words", expectedErr: ErrInvalidRepositoryURL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRepositoryURL(tc.raw)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
