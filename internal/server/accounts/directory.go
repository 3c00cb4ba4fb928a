package accounts

import (
	"sync"

	"github.com/dmitrijs2005/accountdesk/internal/common"
)

// fixture is the single record every directory starts with.
var fixture = User{
	ID:       1,
	Username: "testuser",
	Email:    "test@example.com",
	Phone:    "1234567890",
	Password: "Test123!",
}

// Directory is an ordered, append-only collection of user records.
// No two records share a username and no two share an email.
type Directory struct {
	mu    sync.RWMutex
	users []User
}

// NewDirectory returns a directory seeded with the fixture record.
func NewDirectory() *Directory {
	return &Directory{users: []User{fixture}}
}

// Authenticate returns the first record whose username or email equals the
// supplied one and whose password is identical to password.
func (d *Directory) Authenticate(username, email, password string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if (u.Username == username || u.Email == email) && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

// FindByEmail looks a record up by exact email.
func (d *Directory) FindByEmail(email string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// FindByID looks a record up by identifier.
func (d *Directory) FindByID(id int64) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Add appends a record built from r and returns it. The identifier is the
// record count plus one. Add fails with common.ErrUserAlreadyExists when the
// username or the email is taken; the phone is not checked.
func (d *Directory) Add(r Registration) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Username == r.Username || u.Email == r.Email {
			return User{}, common.ErrUserAlreadyExists
		}
	}

	u := User{
		ID:       int64(len(d.users) + 1),
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
	d.users = append(d.users, u)

	return u, nil
}

func (d *Directory) count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// snapshot returns a copy of all records in insertion order.
func (d *Directory) snapshot() []User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}
