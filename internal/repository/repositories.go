package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	UserRepo    UserRepository
	ProjectRepo ProjectRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepo:    NewUserRepository(pool),
		ProjectRepo: NewProjectRepository(pool),
	}
}
