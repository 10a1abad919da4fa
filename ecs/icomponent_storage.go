package ecs

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Append(item any) int
	Set(index int, item any) bool
	Delete(index int)
	Get(index int) any
	Has(index int) bool
}
