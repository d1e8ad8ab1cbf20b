package service

import (
	"go-restaurant-os/internal/model"
)

// Gate is the static role -> allowed action table. The GUI checks it
// before offering an operation; every mutating service method
// re-validates the acting account on entry as defense in depth.
type Gate struct {
	table map[model.Role][]string
}

func NewGate() *Gate {
	return &Gate{table: model.DefaultPermissions}
}

// IsAllowed reports whether the role may invoke the action
func (g *Gate) IsAllowed(role model.Role, action string) bool {
	for _, p := range g.table[role] {
		if p == model.ActionAll || p == action {
			return true
		}
	}
	return false
}

// requirePerm is the in-service check against the account's own permission
// set, which may have been narrowed or widened by an administrator.
func requirePerm(actor model.AccountInfo, action string) error {
	for _, p := range actor.Permissions {
		if p == model.ActionAll || p == action {
			return nil
		}
	}
	return ErrForbidden
}
