package permissions

import (
	_ "embed"
	"encoding/json"
	"estate/shared/constant"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleTenant, constant.RoleManager}

// Endpoint lists the roles admitted on one chi route pattern. No roles admits every
// authenticated actor; Skip bypasses authentication entirely.
type Endpoint struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

func (e Endpoint) Allows(role string) bool {
	return len(e.Roles) == 0 || slices.Contains(e.Roles, role)
}

type PermissionData struct {
	Endpoints []Endpoint `json:"endpoints"`
	Skip      bool       `json:"skip"`

	index map[string]Endpoint
}

// Lookup returns the entry registered for method on the route pattern.
func (p *PermissionData) Lookup(method, pattern string) (Endpoint, bool) {
	endpoint, ok := p.index[indexKey(method, pattern)]

	return endpoint, ok
}

func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

func parse(raw []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	permissions.index = make(map[string]Endpoint, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		key := indexKey(endpoint.Method, endpoint.Path)
		if _, exists := permissions.index[key]; exists {
			return nil, fmt.Errorf("duplicate permission entry %s", key)
		}

		for _, role := range endpoint.Roles {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %s", role, key)
			}
		}

		permissions.index[key] = endpoint
	}

	return &permissions, nil
}

func indexKey(method, pattern string) string {
	return method + " " + pattern
}
