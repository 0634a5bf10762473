package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/database/testdb"
	"github.com/sohryuu101/web-wedding-sub000/models"

	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: email, PasswordHash: "x"}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newInvitation(userID uint, slug string, published bool) *models.Invitation {
	row := models.DisassembleInvitation(models.InvitationData{
		Slug:        slug,
		BrideName:   "Ann",
		GroomName:   "Tom",
		WeddingDate: time.Date(2027, 6, 1, 10, 0, 0, 0, time.UTC),
		IsPublished: published,
	})
	row.UserID = userID
	return &row
}

func TestInvitationInsertConflicts(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	ann := createUser(t, db, "ann@example.com")
	bob := createUser(t, db, "bob@example.com")

	if err := repo.Insert(ctx, newInvitation(ann.ID, "ann-and-tom", false)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, newInvitation(ann.ID, "other", false)); !errors.Is(err, ErrConflict) {
		t.Fatalf("second invitation for same user: got %v, want ErrConflict", err)
	}
	if err := repo.Insert(ctx, newInvitation(bob.ID, "ann-and-tom", false)); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("taken slug: got %v, want ErrSlugTaken", err)
	}

	exists, err := repo.SlugExists(ctx, "ann-and-tom")
	if err != nil || !exists {
		t.Fatalf("SlugExists = %v, %v", exists, err)
	}
	exists, err = repo.SlugExists(ctx, "nobody")
	if err != nil || exists {
		t.Fatalf("SlugExists(nobody) = %v, %v", exists, err)
	}
}

func TestInvitationFindBySlugOnlyPublished(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "ann@example.com")

	if err := repo.Insert(ctx, newInvitation(u.ID, "draft", false)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.FindBySlugPublished(ctx, "draft"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft must be invisible, got %v", err)
	}
	if _, err := repo.IncrementViews(ctx, "draft"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("views on draft: got %v", err)
	}

	published, err := repo.TogglePublished(ctx, u.ID)
	if err != nil || !published {
		t.Fatalf("toggle = %v, %v", published, err)
	}
	inv, err := repo.FindBySlugPublished(ctx, "draft")
	if err != nil {
		t.Fatalf("find published: %v", err)
	}
	if inv.UserID != u.ID {
		t.Fatalf("wrong owner %d", inv.UserID)
	}

	published, err = repo.TogglePublished(ctx, u.ID)
	if err != nil || published {
		t.Fatalf("second toggle = %v, %v", published, err)
	}
}

func TestInvitationTogglePublishedMissing(t *testing.T) {
	db := testdb.Open(t)
	if _, err := NewInvitationRepository(db).TogglePublished(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestInvitationUpdateFields(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "ann@example.com")
	if err := repo.Insert(ctx, newInvitation(u.ID, "ann-and-tom", false)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, err := repo.UpdateFields(ctx, u.ID, map[string]interface{}{
		"venue":                "Rose Hall",
		"bride_parents_mother": "Mrs. Lee",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Venue != "Rose Hall" || updated.BrideParentsMother != "Mrs. Lee" {
		t.Fatalf("fields not written: %+v", updated)
	}
	if updated.BrideName != "Ann" || updated.Slug != "ann-and-tom" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if _, err := repo.UpdateFields(ctx, u.ID+100, map[string]interface{}{"venue": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: got %v", err)
	}
}

func TestInvitationIncrementViewsConcurrent(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "ann@example.com")
	if err := repo.Insert(ctx, newInvitation(u.ID, "live", true)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	seen := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.IncrementViews(ctx, "live")
			if err != nil {
				t.Errorf("increment: %v", err)
				return
			}
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for v := range seen {
		if unique[v] {
			t.Fatalf("value %d returned twice", v)
		}
		unique[v] = true
	}

	inv, err := repo.FindByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if inv.Views != n {
		t.Fatalf("views = %d, want %d", inv.Views, n)
	}
}

func TestInvitationDeleteRemovesResponses(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationRepository(db)
	rsvps := NewInvitationRSVPRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "ann@example.com")
	inv := newInvitation(u.ID, "ann-and-tom", true)
	if err := repo.Insert(ctx, inv); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := rsvps.Create(ctx, &models.InvitationRSVP{InvitationID: inv.ID, GuestName: "Bo", Attendance: models.AttendanceYes}); err != nil {
		t.Fatalf("rsvp: %v", err)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByUser(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("invitation still present: %v", err)
	}
	left, err := rsvps.FindByInvitationID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("responses survived delete: %d", len(left))
	}
	if err := repo.Delete(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v", err)
	}

	// user and slug are free again
	if err := repo.Insert(ctx, newInvitation(u.ID, "ann-and-tom", false)); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}
