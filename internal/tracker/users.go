package tracker

import (
	"fmt"
	"strings"

	"github.com/intellitask/intellitask-cli/internal/models"
)

// CreateUser creates a new user. Usernames must be non-empty and unique
// across the system.
func (t *Tracker) CreateUser(username, email string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if _, ok := t.userByUsername(username); ok {
		return models.User{}, fmt.Errorf("%w: username %q already exists", ErrValidation, username)
	}
	user := models.User{
		ID:       t.ids.NewID(),
		Username: username,
		Email:    email,
	}
	return t.Users.Save(user)
}

// GetUser returns the user with the given id.
func (t *Tracker) GetUser(id string) (models.User, error) {
	user, ok, err := t.Users.FindByID(id)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return user, nil
}

// UserByUsername returns the user with the given username.
func (t *Tracker) UserByUsername(username string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	user, ok := t.userByUsername(username)
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return user, nil
}

// ListUsers returns all users, in no particular order.
func (t *Tracker) ListUsers() []models.User {
	return t.Users.FindAll()
}

// UpdateUsername changes a user's username, enforcing uniqueness.
func (t *Tracker) UpdateUsername(id, username string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if existing, ok := t.userByUsername(username); ok && existing.ID != id {
		return models.User{}, fmt.Errorf("%w: username %q already exists", ErrValidation, username)
	}
	user, err := t.GetUser(id)
	if err != nil {
		return models.User{}, err
	}
	user.Username = username
	return t.Users.Save(user)
}

// UpdateUserEmail changes a user's email address.
func (t *Tracker) UpdateUserEmail(id, email string) (models.User, error) {
	user, err := t.GetUser(id)
	if err != nil {
		return models.User{}, err
	}
	user.Email = email
	return t.Users.Save(user)
}

// DeleteUser removes a user. It reports whether a user was actually removed.
func (t *Tracker) DeleteUser(id string) (bool, error) {
	return t.Users.DeleteByID(id)
}

func (t *Tracker) userByUsername(username string) (models.User, bool) {
	for _, user := range t.Users.FindAll() {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}
