package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/astrolaunch/launchpad/internal/domain/user"
	"github.com/astrolaunch/launchpad/internal/repo/memory"
	"github.com/google/uuid"
)

func newUser(email string) user.User {
	return user.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      "Test",
		Role:      user.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUsersRepoCreateAndLookup(t *testing.T) {
	repo := memory.NewUsersRepo()
	ctx := context.Background()

	u := newUser("a@x.com")

	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")

	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}

	if byEmail.ID != u.ID {
		t.Errorf("got id %q, want %q", byEmail.ID, u.ID)
	}

	byID, err := repo.GetByID(ctx, u.ID)

	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if byID.Email != "a@x.com" {
		t.Errorf("got email %q", byID.Email)
	}
}

func TestUsersRepoNotFound(t *testing.T) {
	repo := memory.NewUsersRepo()
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "nobody@x.com"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("GetByEmail: got %v, want ErrNotFound", err)
	}

	if _, err := repo.GetByID(ctx, "missing-id"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("GetByID: got %v, want ErrNotFound", err)
	}
}

func TestUsersRepoDuplicateEmail(t *testing.T) {
	repo := memory.NewUsersRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, newUser("a@x.com")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	if err := repo.Create(ctx, newUser("a@x.com")); !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

// Concurrent registrations with the same email must produce exactly one
// account, no matter how the goroutines interleave.
func TestUsersRepoConcurrentCreateSameEmail(t *testing.T) {
	repo := memory.NewUsersRepo()
	ctx := context.Background()

	const workers = 32

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := repo.Create(ctx, newUser("race@x.com"))

			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}

			if !errors.Is(err, user.ErrEmailTaken) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if wins != 1 {
		t.Errorf("got %d successful creates, want exactly 1", wins)
	}
}
