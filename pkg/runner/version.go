package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LibraryPackage is the npm package whose version selects the migrations.
const LibraryPackage = "igniteui-angular"

// ErrVersionNotFound indicates the project's library version could not be
// determined.
var ErrVersionNotFound = errors.New("library version not found")

// packageManifest is the subset of package.json the runner reads.
type packageManifest struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// DetectVersion reads the igniteui-angular version from dir/package.json.
// Range operators are stripped, so "^11.1.4" yields "11.1.4".
func DetectVersion(dir string) (string, error) {
	path := filepath.Join(dir, "package.json")
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: no package.json in %s", ErrVersionNotFound, dir)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	for _, deps := range []map[string]string{
		manifest.Dependencies,
		manifest.DevDependencies,
		manifest.PeerDependencies,
	} {
		if spec, ok := deps[LibraryPackage]; ok {
			if version := cleanVersion(spec); version != "" {
				return version, nil
			}
			return "", fmt.Errorf("%w: unsupported version %q in %s", ErrVersionNotFound, spec, path)
		}
	}
	return "", fmt.Errorf("%w: %s does not depend on %s", ErrVersionNotFound, path, LibraryPackage)
}

// cleanVersion strips npm range operators from spec. It returns "" when
// spec is not a plain version, such as a tag, URL or compound range.
func cleanVersion(spec string) string {
	version := strings.TrimLeft(strings.TrimSpace(spec), "^~>=v ")
	if version == "" || strings.ContainsAny(version, " |<:/*xX") {
		return ""
	}
	if version[0] < '0' || version[0] > '9' {
		return ""
	}
	return version
}
