package utils

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

type slashTest struct {
	path     string
	expected string
	message  string
}

func (s *utilsSuite) TestEnsureTrailingSlash() {
	tests := []slashTest{
		{
			path:     "/some/path",
			expected: "/some/path/",
			message:  "no slash - adding one",
		},
		{
			path:     "/some/path/",
			expected: "/some/path/",
			message:  "slash found - don't add one",
		},
		{
			path:     "/",
			expected: "/",
			message:  "just a slash - don't add one",
		},
		{
			path:     "",
			expected: "/",
			message:  "empty string - add slash",
		},
	}

	for i := range tests {
		s.Equal(tests[i].expected, EnsureTrailingSlash(tests[i].path), tests[i].message)
	}
}

func (s *utilsSuite) TestEnsureLeadingSlash() {
	tests := []slashTest{
		{
			path:     "some/path/",
			expected: "/some/path/",
			message:  "no slash - adding one",
		},
		{
			path:     "/some/path/",
			expected: "/some/path/",
			message:  "slash found - don't add one",
		},
		{
			path:     "",
			expected: "/",
			message:  "empty string - add slash",
		},
	}

	for i := range tests {
		s.Equal(tests[i].expected, EnsureLeadingSlash(tests[i].path), tests[i].message)
	}
}

func (s *utilsSuite) TestRemoveTrailingSlash() {
	tests := []slashTest{
		{
			path:     "/some/path",
			expected: "/some/path",
			message:  "no trailing slash - no change",
		},
		{
			path:     "/some/path/",
			expected: "/some/path",
			message:  "trailing slash removed",
		},
		{
			path:     "/some/path///",
			expected: "/some/path",
			message:  "multiple trailing slashes removed",
		},
	}

	for i := range tests {
		s.Equal(tests[i].expected, RemoveTrailingSlash(tests[i].path), tests[i].message)
	}
}

func (s *utilsSuite) TestRemoveLeadingSlash() {
	tests := []slashTest{
		{
			path:     "some/path/",
			expected: "some/path/",
			message:  "no leading slash - no change",
		},
		{
			path:     "/some/path/",
			expected: "some/path/",
			message:  "leading slash removed",
		},
		{
			path:     "///some/path/",
			expected: "some/path/",
			message:  "multiple leading slashes removed",
		},
	}

	for i := range tests {
		s.Equal(tests[i].expected, RemoveLeadingSlash(tests[i].path), tests[i].message)
	}
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
