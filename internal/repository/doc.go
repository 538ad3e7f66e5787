// Package repository implements SurrealDB data access for the Hunter API
// entities. Each repository speaks SurrealQL through the database.Database
// interface and translates driver result shapes back into model structs.
// Missing records surface as (nil, nil) from Get methods; services decide
// whether that is an error.
package repository
