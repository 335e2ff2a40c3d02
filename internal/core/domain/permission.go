package domain

import "sort"

// Action is an operation a role may be allowed to perform on a resource.
type Action string

const (
	ActionManage Action = "manage" // implies every other action
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names a guarded entity type.
type Resource string

const (
	ResourceAll          Resource = "all"
	ResourceTitle        Resource = "Title"
	ResourceAccount      Resource = "Account"
	ResourceMovementType Resource = "MovementType"
	ResourcePartner      Resource = "Partner"
	ResourceJournalEntry Resource = "JournalEntry"
	ResourceReport       Resource = "Report"
	ResourceUser         Resource = "User"
)

// Permission grants one action on one resource.
type Permission struct {
	Resource Resource `json:"resource"`
	Action   Action   `json:"action"`
}

// Role groups permissions.
type Role struct {
	RoleID      string `json:"roleID"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Capabilities is the resolved permission set of a caller. The zero value grants nothing.
type Capabilities struct {
	grants map[Resource]map[Action]bool
}

// NewCapabilities builds a capability set from permissions.
func NewCapabilities(perms ...Permission) Capabilities {
	c := Capabilities{grants: make(map[Resource]map[Action]bool)}
	for _, p := range perms {
		if c.grants[p.Resource] == nil {
			c.grants[p.Resource] = make(map[Action]bool)
		}
		c.grants[p.Resource][p.Action] = true
	}
	return c
}

// Can reports whether action is allowed on resource. "manage" covers every action and
// "all" covers every resource.
func (c Capabilities) Can(action Action, resource Resource) bool {
	for _, r := range []Resource{resource, ResourceAll} {
		actions := c.grants[r]
		if actions[action] || actions[ActionManage] {
			return true
		}
	}
	return false
}

// Permissions lists the raw grants, sorted by resource then action.
func (c Capabilities) Permissions() []Permission {
	var out []Permission
	for r, actions := range c.grants {
		for a := range actions {
			out = append(out, Permission{Resource: r, Action: a})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out
}
