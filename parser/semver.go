package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// version is an openapi field value split into its parts, such as "3.0.3",
// "3.1" or "3.1.0-rc1". Major and minor are always numeric. The patch may be
// missing, which reads as 0, or a placeholder such as the "x" of "3.0.x",
// which leaves exactPatch false.
type version struct {
	major      int
	minor      int
	patch      int
	exactPatch bool
	prerelease string
}

// series returns the major.minor pair that selects a builder.
func (v *version) series() series {
	return series{v.major, v.minor}
}

// parseVersion splits s into a version. It fails unless s starts with a
// numeric major and minor, and it rejects more than three components.
func parseVersion(s string) (*version, error) {
	base, prerelease, _ := strings.Cut(s, "-")

	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	major, ok := versionPart(parts[0])
	if !ok {
		return nil, fmt.Errorf("invalid major version: %q", parts[0])
	}
	minor, ok := versionPart(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid minor version: %q", parts[1])
	}

	v := &version{major: major, minor: minor, exactPatch: true, prerelease: prerelease}
	if len(parts) == 3 {
		v.patch, v.exactPatch = versionPart(parts[2])
		if !v.exactPatch {
			v.patch = 0
		}
	}
	return v, nil
}

func versionPart(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0, false
	}
	return n, true
}
