package accounts

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory_SeedsFixture(t *testing.T) {
	d := NewDirectory()

	require.Equal(t, 1, d.count())
	assert.Equal(t, fixture, d.snapshot()[0])
}

func TestDirectory_Authenticate(t *testing.T) {
	d := NewDirectory()

	tests := []struct {
		name                      string
		username, email, password string
		ok                        bool
	}{
		{"username match", "testuser", "", "Test123!", true},
		{"email match", "", "test@example.com", "Test123!", true},
		{"email match, foreign username", "someone", "test@example.com", "Test123!", true},
		{"wrong password", "testuser", "", "wrong", false},
		{"password is case-sensitive", "testuser", "", "test123!", false},
		{"unknown user", "ghost", "ghost@example.com", "Test123!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := d.Authenticate(tt.username, tt.email, tt.password)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, int64(1), u.ID)
			}
		})
	}
}

func TestDirectory_Add(t *testing.T) {
	d := NewDirectory()

	u, err := d.Add(Registration{Username: "alice", Email: "alice@x.com", Phone: "1112223333", Password: "Abcd1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, 2, d.count())

	got, ok := d.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "1112223333", got.Phone)
}

func TestDirectory_Add_Collisions(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
	}{
		{"username", Registration{Username: "testuser", Email: "new@x.com", Phone: "5555555555", Password: "Abc12345"}},
		{"email", Registration{Username: "fresh", Email: "test@example.com", Phone: "5555555555", Password: "Abc12345"}},
		{"both", Registration{Username: "testuser", Email: "test@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirectory()
			_, err := d.Add(tt.reg)
			require.ErrorIs(t, err, common.ErrUserAlreadyExists)
			assert.Equal(t, 1, d.count())
		})
	}
}

func TestDirectory_Add_PhoneNotUnique(t *testing.T) {
	d := NewDirectory()

	_, err := d.Add(Registration{Username: "bob", Email: "bob@x.com", Phone: fixture.Phone, Password: "Abcd1234"})
	require.NoError(t, err)
}

func TestDirectory_Add_ConcurrentKeepsUniqueness(t *testing.T) {
	d := NewDirectory()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// half of the workers race on the same username
			name := fmt.Sprintf("user%d", i%(workers/2))
			_, err := d.Add(Registration{Username: name, Email: fmt.Sprintf("%d@x.com", i), Password: "Abcd1234"})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var failed int
	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, common.ErrUserAlreadyExists)
			failed++
		}
	}

	assert.Equal(t, workers/2, failed)
	assertUnique(t, d)

	ids := map[int64]bool{}
	for _, u := range d.snapshot() {
		assert.False(t, ids[u.ID], "duplicate id %d", u.ID)
		ids[u.ID] = true
	}
}

func TestDirectory_UsersReturnsCopy(t *testing.T) {
	d := NewDirectory()

	users := d.snapshot()
	users[0].Username = "mallory"

	u, ok := d.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "testuser", u.Username)
}

func assertUnique(t *testing.T, d *Directory) {
	t.Helper()

	usernames := map[string]bool{}
	emails := map[string]bool{}
	for _, u := range d.snapshot() {
		assert.False(t, usernames[u.Username], "duplicate username %q", u.Username)
		assert.False(t, emails[u.Email], "duplicate email %q", u.Email)
		usernames[u.Username] = true
		emails[u.Email] = true
	}
}
