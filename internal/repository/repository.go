// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
// Lookups of missing rows return sql.ErrNoRows unchanged; services translate it.
package repository
