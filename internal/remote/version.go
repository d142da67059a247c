package remote

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the service API major version this client speaks.
const SupportedMajor = "v1"

// CanonicalVersion normalizes a service version ("1.0", "v1.2.3") to
// canonical semver form. It returns "" when v is not a version.
func CanonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// CheckCompatible reports an error when version does not share
// SupportedMajor.
func CheckCompatible(version string) error {
	canon := CanonicalVersion(version)
	if canon == "" {
		return fmt.Errorf("service reported invalid version %q", version)
	}
	if got := semver.Major(canon); got != SupportedMajor {
		return fmt.Errorf("service API %s is incompatible with client API %s", got, SupportedMajor)
	}
	return nil
}

// Ping fetches the service banner and checks its version.
func Ping(ctx context.Context, api API) (*ServiceInfo, error) {
	info, err := api.Version(ctx)
	if err != nil {
		return nil, err
	}
	if err := CheckCompatible(info.Version); err != nil {
		return info, err
	}
	return info, nil
}
