package store

import (
	"context"

	"shopzone/internal/model"
)

// Users exposes the user collection and the session slot.
type Users struct {
	store *Store
}

func (u *Users) readAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if _, err := u.store.readBlob(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create registers a new user. Fails with ErrUserExists if the email
// is already registered. The password is stored as given; hashing it
// is an explicit non-goal of this store.
func (u *Users) Create(ctx context.Context, email, password string) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	users, err := u.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range users {
		if existing.Email == email {
			return nil, model.ErrUserExists
		}
	}

	user := model.User{
		ID:        generateID(),
		Email:     email,
		Password:  password,
		CreatedAt: now(),
	}

	users = append(users, user)
	if err := u.store.writeBlob(ctx, keyUsers, users); err != nil {
		return nil, err
	}

	u.store.logger.Debug().Str("user_id", user.ID).Msg("user created")
	return &user, nil
}

// Authenticate returns the user matching both email and password
// exactly, or ErrInvalidCredentials.
func (u *Users) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	users, err := u.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			user := users[i]
			return &user, nil
		}
	}

	return nil, model.ErrInvalidCredentials
}

// Count returns the number of registered users.
func (u *Users) Count(ctx context.Context) (int64, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	users, err := u.readAll(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

// Current returns the user occupying this store's session slot, or nil
// when no session exists.
func (u *Users) Current(ctx context.Context) (*model.User, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	var user model.User
	ok, err := u.store.readBlob(ctx, keyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// SetCurrent writes the session slot. A nil user clears the session.
func (u *Users) SetCurrent(ctx context.Context, user *model.User) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if user == nil {
		return u.store.kv.Delete(ctx, keyCurrentUser)
	}
	return u.store.writeBlob(ctx, keyCurrentUser, user)
}
