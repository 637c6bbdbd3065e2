package inquiry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/realstat/realstat/internal/db"
)

func TestCreateStartsNew(t *testing.T) {
	repo := testRepo(t)

	i, err := repo.Create("Jamie", "jamie@example.com", "Urban Penthouse", "Is it still available?")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if i.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if i.Status != StatusNew {
		t.Errorf("status = %q, want %q", i.Status, StatusNew)
	}
	if i.PropertyTitle != "Urban Penthouse" {
		t.Errorf("property_title = %q, want snapshot value", i.PropertyTitle)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := testRepo(t)

	for _, name := range []string{"first", "second", "third"} {
		if _, err := repo.Create(name, name+"@example.com", "", "hello"); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	inquiries, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inquiries) != 3 {
		t.Fatalf("len = %d, want 3", len(inquiries))
	}
	if inquiries[0].Name != "third" || inquiries[2].Name != "first" {
		t.Errorf("order = %q, %q, %q; want newest first", inquiries[0].Name, inquiries[1].Name, inquiries[2].Name)
	}
}

func TestSetStatus(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("Jamie", "jamie@example.com", "", "hi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	replied, err := repo.SetStatus(created.ID, StatusReplied)
	if err != nil {
		t.Fatalf("set replied: %v", err)
	}
	if replied.Status != StatusReplied {
		t.Errorf("status = %q, want %q", replied.Status, StatusReplied)
	}

	archived, err := repo.SetStatus(created.ID, StatusArchived)
	if err != nil {
		t.Fatalf("set archived: %v", err)
	}
	if archived.Status != StatusArchived {
		t.Errorf("status = %q, want %q", archived.Status, StatusArchived)
	}
}

func TestSetStatusHasNoTransitionTable(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("Jamie", "jamie@example.com", "", "hi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Archived is terminal only in the UI; the service accepts any defined
	// status after any other.
	if _, err := repo.SetStatus(created.ID, StatusArchived); err != nil {
		t.Fatalf("archive: %v", err)
	}
	back, err := repo.SetStatus(created.ID, StatusNew)
	if err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	if back.Status != StatusNew {
		t.Errorf("status = %q, want %q", back.Status, StatusNew)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("Jamie", "jamie@example.com", "", "hi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.SetStatus(created.ID, Status("Pending")); err == nil {
		t.Fatal("expected error for undefined status")
	}
}

func TestSetStatusNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.SetStatus(9999, StatusReplied)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestArchivedStaysInList(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("Jamie", "jamie@example.com", "", "hi")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.SetStatus(created.ID, StatusArchived); err != nil {
		t.Fatalf("archive: %v", err)
	}

	inquiries, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("len = %d, want archived inquiry to remain listed", len(inquiries))
	}
	if inquiries[0].Status != StatusArchived {
		t.Errorf("status = %q, want %q", inquiries[0].Status, StatusArchived)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"New", "Replied", "Archived"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "new", "Pending", "Closed"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func testRepo(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return NewRepository(d)
}
