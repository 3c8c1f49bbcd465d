package httpapi

import (
	"strings"

	"github.com/leaguedesk/leaguedesk/internal/domain/role"
)

const (
	profileCreatePath      = "/v1/profile/new"
	registrationCreatePath = "/v1/registrations/new"
	logoutPath             = "/v1/logout"
	registrationsPrefix    = "/v1/registrations/"
	roleProfileSuffix      = "/profile/new"
)

// Routes is the canonical URL layout shared by the router and the
// onboarding gate. The gate's whitelist is defined in terms of these
// paths, so the two must never drift apart.
type Routes struct{}

func NewRoutes() Routes {
	return Routes{}
}

func (Routes) ProfileCreatePath() string {
	return profileCreatePath
}

func (Routes) RegistrationCreatePath() string {
	return registrationCreatePath
}

func (Routes) LogoutPath() string {
	return logoutPath
}

func (Routes) RoleProfileCreatePath(registrationID string, r role.Role) string {
	return registrationsPrefix + registrationID + "/roles/" + r.RoutingKey() + roleProfileSuffix
}

func (Routes) IsRoleProfileCreatePath(path string) bool {
	return strings.HasPrefix(path, registrationsPrefix) && strings.HasSuffix(path, roleProfileSuffix)
}
