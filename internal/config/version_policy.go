package config

import (
	"slices"
	"strings"
)

// CurrentConfigVersion is written by new configs.
const CurrentConfigVersion = "1"

// SupportedConfigVersions lists the configVersion values Parse accepts.
var SupportedConfigVersions = []string{CurrentConfigVersion}

func IsSupportedConfigVersion(v string) bool {
	return slices.Contains(SupportedConfigVersions, v)
}

func SupportedConfigVersionsCSV() string {
	return strings.Join(SupportedConfigVersions, ", ")
}
