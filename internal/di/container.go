package di

import (
	"github.com/LawrenceKuria/task-manager-fullstack/internal/handler"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/repository"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/service"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/config"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/database"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/redis"
)

// Container wires repositories, services and handlers
type Container struct {
	// Repositories
	UserRepository     repository.UserRepository
	TaskListRepository repository.TaskListRepository
	TaskRepository     repository.TaskRepository

	// Services
	TokenService    service.TokenService
	AuthService     service.AuthService
	TaskListService service.TaskListService
	TaskService     service.TaskService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	TaskListHandler *handler.TaskListHandler
	TaskHandler     *handler.TaskHandler
}

// NewContainer builds the dependency graph. The redis client may be nil
// when distributed rate limiting is disabled.
func NewContainer(cfg *config.Config, db *database.PostgresDB, redisClient *redis.Client) *Container {
	c := &Container{}

	c.UserRepository = repository.NewPostgresUserRepository(db)
	c.TaskListRepository = repository.NewPostgresTaskListRepository(db)
	c.TaskRepository = repository.NewPostgresTaskRepository(db)

	c.TokenService = service.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer)
	c.AuthService = service.NewAuthService(c.UserRepository, c.TokenService)
	c.TaskListService = service.NewTaskListService(c.TaskListRepository, c.TaskRepository)
	c.TaskService = service.NewTaskService(c.TaskRepository, c.TaskListRepository)

	c.HealthHandler = handler.NewHealthHandler(db, redisClient, cfg.App.Name, cfg.App.Version)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.TaskListHandler = handler.NewTaskListHandler(c.TaskListService)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService)

	return c
}
