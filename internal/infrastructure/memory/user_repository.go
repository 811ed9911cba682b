package memory

import (
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador en memoria del puerto UserRepository.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador sobre el almacén compartido.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create persiste un nuevo usuario; ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.findUserByEmail(user.Email) != nil {
		return domain.ErrEmailAlreadyExists
	}
	r.store.putUser(user)
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.getUser(id), nil
}

// FindByEmail obtiene un usuario por email, case-insensitive.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.findUserByEmail(email), nil
}

// List lista usuarios en orden de creación con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.listUsers(limit, offset), nil
}
