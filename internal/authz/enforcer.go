// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authz decides whether an authenticated caller may reach the admin
// surface. Decisions come from a casbin RBAC model: the policy grants the
// "admin" role every admin route, and each configured admin email is bound
// to that role.
package authz

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// RoleAdmin is the role bound to every configured admin email.
const RoleAdmin = "admin"

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

var ErrEnforcement = errors.New("authorization check failed")

// Enforcer wraps a casbin.SyncedEnforcer loaded with the embedded model and
// policy.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer builds an enforcer and grants RoleAdmin to every email in
// adminEmails. Blank entries are skipped.
func NewEnforcer(adminEmails []string) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err = loadEmbeddedPolicy(enforcer, embeddedPolicy); err != nil {
		return nil, err
	}

	for _, email := range adminEmails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if _, err = enforcer.AddGroupingPolicy(email, RoleAdmin); err != nil {
			return nil, fmt.Errorf("failed to grant admin role to %s: %w", email, err)
		}
	}

	return &Enforcer{enforcer: enforcer}, nil
}

func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		}
	}
	return nil
}

// IsAllowed reports whether email may call method on path.
func (e *Enforcer) IsAllowed(email, path, method string) (bool, error) {
	allowed, err := e.enforcer.Enforce(email, path, method)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEnforcement, err)
	}
	return allowed, nil
}
