// Package models contains the GORM persistence models of the catalog tables
// and the mappers between them and the domain entities. Domain types carry no
// GORM tags; repositories only read and write these models.
//
// Tables:
//   - customer_options, products: the upstream collections
//   - customer_option_groups, customer_option_group_translations: groups and their names
//   - customer_option_associations: option to group relation with position
//   - customer_option_group_products: group to product scope
package models
