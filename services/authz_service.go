package services

import (
	"fmt"

	"restaurant-api/models"
)

// Role is a principal's effective position for authorization purposes.
type Role string

const (
	RoleAnonymous    Role = "anonymous"
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleManager      Role = "manager"
	RoleSuperuser    Role = "superuser"
)

// Resource names a protected surface of the API.
type Resource string

const (
	ResourceMenu              Resource = "menu"
	ResourceCategory          Resource = "category"
	ResourceFeatured          Resource = "featured"
	ResourceManagerGroup      Resource = "manager_group"
	ResourceDeliveryCrewGroup Resource = "delivery_crew_group"
	ResourceCart              Resource = "cart"
	ResourceOrder             Resource = "order"
)

// Action is what the principal wants to do with a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type roleSet map[Role]bool

func roles(rs ...Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

var (
	anyone        = roles(RoleAnonymous, RoleCustomer, RoleDeliveryCrew, RoleManager, RoleSuperuser)
	authenticated = roles(RoleCustomer, RoleDeliveryCrew, RoleManager, RoleSuperuser)
	managers      = roles(RoleManager, RoleSuperuser)
)

// policy is the single authorization table: resource × action → roles
// allowed. Every controller consults it through Authorize; ownership
// checks (own cart, own order, assigned order) sit on top in services.
var policy = map[Resource]map[Action]roleSet{
	ResourceMenu: {
		ActionRead:   anyone,
		ActionCreate: managers,
		ActionUpdate: managers,
		ActionDelete: managers,
	},
	ResourceCategory: {
		ActionRead:   anyone,
		ActionCreate: managers,
	},
	ResourceFeatured: {
		ActionRead:   anyone,
		ActionUpdate: managers,
	},
	ResourceManagerGroup: {
		ActionRead:   managers,
		ActionCreate: managers,
		ActionDelete: managers,
	},
	ResourceDeliveryCrewGroup: {
		ActionRead:   managers,
		ActionCreate: managers,
		ActionDelete: managers,
	},
	ResourceCart: {
		ActionRead:   authenticated,
		ActionCreate: authenticated,
		ActionDelete: authenticated,
	},
	ResourceOrder: {
		ActionRead:   authenticated,
		ActionCreate: authenticated,
		ActionUpdate: roles(RoleDeliveryCrew, RoleManager, RoleSuperuser),
		ActionDelete: managers,
	},
}

// RolesOf derives the principal's role set. Every authenticated user is
// at least a customer; group membership and the superuser flag stack on
// top of that.
func RolesOf(p *models.Principal) []Role {
	if p.Anonymous() {
		return []Role{RoleAnonymous}
	}
	rs := []Role{RoleCustomer}
	if p.User.IsDeliveryCrew() {
		rs = append(rs, RoleDeliveryCrew)
	}
	if p.User.IsManager() {
		rs = append(rs, RoleManager)
	}
	if p.User.Superuser {
		rs = append(rs, RoleSuperuser)
	}
	return rs
}

// Authorize decides whether the principal may perform action on resource.
// It returns nil on allow, ErrUnauthorized for anonymous callers and
// ErrForbidden for authenticated ones, so the boundary can answer 401
// versus 403. Unknown resource/action pairs always deny.
func Authorize(p *models.Principal, resource Resource, action Action) error {
	allowed := policy[resource][action]
	for _, role := range RolesOf(p) {
		if allowed[role] {
			return nil
		}
	}
	if p.Anonymous() {
		return fmt.Errorf("%w: %s %s requires authentication", models.ErrUnauthorized, action, resource)
	}
	return fmt.Errorf("%w: %s on %s denied", models.ErrForbidden, action, resource)
}
