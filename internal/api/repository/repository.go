// Package repository holds the SQLite accessors of the cat-matching data.
package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . BreedRepository,CatRepository,LikeRepository,UserRepository
