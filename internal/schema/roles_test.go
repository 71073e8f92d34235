// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapRoles(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		want     Role
		unmapped bool
	}{
		{name: "price", column: "price", want: RolePrice},
		{name: "prefixed price", column: "buy_box_price", want: RolePrice},
		{name: "price drop excluded", column: "price_drop_30_days", unmapped: true},
		{name: "sales", column: "monthly_sales", want: RoleUnits},
		{name: "units", column: "units_sold", want: RoleUnits},
		{name: "revenue", column: "parent_revenue", want: RoleRevenue},
		{name: "bsr", column: "bsr", want: RoleRank},
		{name: "rank", column: "sales_rank", want: RoleUnits}, // "sales" rule fires first
		{name: "plain rank", column: "category_rank", want: RoleRank},
		{name: "asin", column: "asin", want: RoleIdentifier},
		{name: "title", column: "product_title", want: RoleTitle},
		{name: "product name", column: "product_name", want: RoleTitle},
		{name: "reviews", column: "review_count", want: RoleReviews},
		{name: "rating excluded from reviews", column: "review_rating", unmapped: true},
		{name: "no rule", column: "brand", unmapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := MapRoles([]string{tt.column})
			if tt.unmapped {
				assert.Empty(t, roles)
				return
			}
			assert.Equal(t, tt.want, roles[tt.column])
		})
	}
}

func TestMapRoles_OneRolePerColumn(t *testing.T) {
	// "price" also contains no other trigger, but "product_price_name" hits
	// both the price and title rules; the first rule in priority order wins.
	roles := MapRoles([]string{"product_price_name"})
	assert.Equal(t, RolePrice, roles["product_price_name"])
	assert.Len(t, roles, 1)
}

func TestColumnFor(t *testing.T) {
	columns := []string{"asin", "price", "launch_price"}
	roles := MapRoles(columns)

	assert.Equal(t, "price", ColumnFor(roles, columns, RolePrice), "first column in dataset order wins")
	assert.Equal(t, "asin", ColumnFor(roles, columns, RoleIdentifier))
	assert.Equal(t, "", ColumnFor(roles, columns, RoleRevenue))
}

func TestDistinctRoles(t *testing.T) {
	assert.Equal(t, 3, DistinctRoles(MapRoles([]string{"asin", "price", "title"})))
	assert.Equal(t, 1, DistinctRoles(MapRoles([]string{"price", "launch_price"})))
	assert.Equal(t, 0, DistinctRoles(MapRoles([]string{"brand", "category"})))
}
