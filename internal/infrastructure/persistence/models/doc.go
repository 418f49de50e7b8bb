// Package models contains GORM persistence models that map 1:1 to the garage tables.
// Domain entities stay free of ORM tags; each model converts with ToDomain and FromDomain.
//
// Files:
//   - base.go: BaseModel with the autoincrement id and timestamps
//   - identity.go: users
//   - catalog.go: categories, products, services, reviews
//   - cart.go: cart
//   - trade.go: orders, order_items, walkin_sales, walkin_sale_items
//   - inventory.go: inventory_transactions
//   - content.go: team_members, collaborate_teams, awards
package models
