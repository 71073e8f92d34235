// SPDX-License-Identifier: Apache-2.0

// Package schema assigns semantic roles to cleaned column identifiers so the
// extractor can locate prices, sales figures and product identity fields in
// arbitrarily named exports.
package schema

import (
	"strings"
)

// Role is a fixed semantic meaning a column can carry.
type Role string

const (
	RolePrice      Role = "price"
	RoleUnits      Role = "units"
	RoleRevenue    Role = "revenue"
	RoleRank       Role = "rank"
	RoleIdentifier Role = "identifier"
	RoleTitle      Role = "title"
	RoleReviews    Role = "reviews"
)

// RoleMap maps column identifiers to their resolved role. A column maps to
// at most one role; a role stays unmapped when no column qualifies.
type RoleMap map[string]Role

// roleRule maps trigger keywords to a role. A column matches when it contains
// any keyword and none of the exclusions.
type roleRule struct {
	keywords []string
	exclude  []string
	role     Role
}

// columnRoleRules is the priority-ordered rule table. Rules are evaluated in
// order; the first match wins per column. "price drop" columns must not be
// mistaken for the price, and "rating" columns must not be counted as review
// counts.
var columnRoleRules = []roleRule{
	{keywords: []string{"price"}, exclude: []string{"drop"}, role: RolePrice},
	{keywords: []string{"sales", "units"}, role: RoleUnits},
	{keywords: []string{"revenue"}, role: RoleRevenue},
	{keywords: []string{"bsr", "rank"}, role: RoleRank},
	{keywords: []string{"asin"}, role: RoleIdentifier},
	{keywords: []string{"title", "product", "name"}, role: RoleTitle},
	{keywords: []string{"review"}, exclude: []string{"rating"}, role: RoleReviews},
}

// MapRoles resolves a role for each column identifier that matches a rule.
// Columns matching no rule are left unmapped.
func MapRoles(columns []string) RoleMap {
	roles := make(RoleMap)
	for _, col := range columns {
		if role, ok := matchRole(col); ok {
			roles[col] = role
		}
	}
	return roles
}

func matchRole(column string) (Role, bool) {
	lower := strings.ToLower(column)
	for _, rule := range columnRoleRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		if containsAny(lower, rule.exclude) {
			continue
		}
		return rule.role, true
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ColumnFor returns the first column (in dataset order) mapped to the given
// role, or "" when the role is unmapped.
func ColumnFor(roles RoleMap, columns []string, role Role) string {
	for _, col := range columns {
		if roles[col] == role {
			return col
		}
	}
	return ""
}

// DistinctRoles counts how many distinct roles the map resolves.
func DistinctRoles(roles RoleMap) int {
	seen := make(map[Role]bool, len(roles))
	for _, role := range roles {
		seen[role] = true
	}
	return len(seen)
}
