package parser

// OASVersion identifies a released version of the OpenAPI Specification, see
// https://github.com/OAI/OpenAPI-Specification/releases
//
// Versions without a builder (2.0 and 3.2.0) are still recognized so that
// errors can name them.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301 OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302 OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304 OpenAPI Specification Version 3.0.4
	OASVersion304
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311 OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312 OpenAPI Specification Version 3.1.2
	OASVersion312
	// OASVersion320 OpenAPI Specification Version 3.2.0
	OASVersion320
)

// series is a major.minor pair.
type series [2]int

// seriesInfo holds the known patch releases of one series.
type seriesInfo struct {
	patches  map[int]OASVersion
	maxPatch int
}

var (
	versionToString = map[OASVersion]string{
		OASVersion20:  "2.0",
		OASVersion300: "3.0.0",
		OASVersion301: "3.0.1",
		OASVersion302: "3.0.2",
		OASVersion303: "3.0.3",
		OASVersion304: "3.0.4",
		OASVersion310: "3.1.0",
		OASVersion311: "3.1.1",
		OASVersion312: "3.1.2",
		OASVersion320: "3.2.0",
	}

	stringToVersion = func() map[string]OASVersion {
		m := make(map[string]OASVersion, len(versionToString))
		for k, v := range versionToString {
			m[v] = k
		}
		return m
	}()

	// seriesLookup maps a 3.x series to its known patches, for example
	// {3, 0} -> {0: 300, 1: 301, 2: 302, 3: 303, 4: 304}.
	seriesLookup = func() map[series]seriesInfo {
		m := make(map[series]seriesInfo)
		for oasVer, verStr := range versionToString {
			if oasVer == OASVersion20 {
				continue
			}
			v, err := parseVersion(verStr)
			if err != nil {
				continue
			}
			key := v.series()
			info, ok := m[key]
			if !ok {
				info = seriesInfo{patches: make(map[int]OASVersion), maxPatch: -1}
			}
			info.patches[v.patch] = oasVer
			info.maxPatch = max(info.maxPatch, v.patch)
			m[key] = info
		}
		return m
	}()
)

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// Is30 reports whether v belongs to the 3.0.x series, built by package v30.
func (v OASVersion) Is30() bool {
	return v >= OASVersion300 && v <= OASVersion304
}

// Is31 reports whether v belongs to the 3.1.x series, built by package v31.
func (v OASVersion) Is31() bool {
	return v >= OASVersion310 && v <= OASVersion312
}

// Supported reports whether a builder exists for v.
func (v OASVersion) Supported() bool {
	return v.Is30() || v.Is31()
}

// ParseVersion will attempt to parse the string s into an OASVersion, and returns false if not valid.
// This function supports:
// 1. Exact version matches (e.g., "2.0", "3.0.3")
// 2. Future patch versions in known major.minor series (e.g., "3.0.5" maps to "3.0.4")
// 3. Pre-release versions (e.g., "3.1.0-rc1") map to closest match without exceeding base version
//
// For example:
// - "3.0.5" (not yet released) maps to OASVersion304 (3.0.4) - latest in 3.0.x series
// - "3.1.0-rc1" maps to OASVersion310 (3.1.0) - the base version
// - "3.3.0" has no known series and is not valid
func ParseVersion(s string) (OASVersion, bool) {
	if v, ok := stringToVersion[s]; ok {
		return v, true
	}

	ver, err := parseVersion(s)
	if err != nil || !ver.exactPatch {
		return Unknown, false
	}

	switch ver.major {
	case 2:
		if ver.minor == 0 {
			return OASVersion20, true
		}
		return Unknown, false
	case 3:
		return findClosestVersion(ver.series(), ver.patch)
	default:
		return Unknown, false
	}
}

// findClosestVersion finds the closest known version of s that doesn't exceed patch.
func findClosestVersion(s series, patch int) (OASVersion, bool) {
	info, ok := seriesLookup[s]
	if !ok {
		return Unknown, false
	}
	if v, ok := info.patches[patch]; ok {
		return v, true
	}
	if patch > info.maxPatch {
		return info.patches[info.maxPatch], true
	}
	for p := patch; p >= 0; p-- {
		if v, ok := info.patches[p]; ok {
			return v, true
		}
	}
	return Unknown, false
}
