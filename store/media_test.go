package store

import (
	"testing"

	"pluggedin/models"
)

func TestMediaCreate_DuplicateURL(t *testing.T) {
	db := newTestDB(t)
	s := NewMediaStore(db, testLogger())

	media := models.MediaRecord{MediaURL: "https://cdn.example.com/a.png", AuthorEmail: alice}
	created, err := s.Create(&media)
	if err != nil || !created {
		t.Fatalf("Create() = (%v, %v), want (true, nil)", created, err)
	}

	dup := models.MediaRecord{MediaURL: "https://cdn.example.com/a.png", AuthorEmail: bob}
	created, err = s.Create(&dup)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created {
		t.Error("duplicate media URL must not create a second record")
	}

	var count int64
	db.Model(&models.MediaRecord{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one record, got %d", count)
	}
}

func TestMediaUpdateTitle_AbsentID(t *testing.T) {
	db := newTestDB(t)
	s := NewMediaStore(db, testLogger())

	matched, err := s.UpdateTitle(42, "new title")
	if err != nil {
		t.Fatalf("UpdateTitle() error: %v", err)
	}
	if matched != 0 {
		t.Fatalf("expected 0 matched rows, got %d", matched)
	}

	// No partial record may appear as a side effect
	var count int64
	db.Model(&models.MediaRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("update of an absent id created %d records", count)
	}
}

func TestMediaUpdateTitle_ExistingID(t *testing.T) {
	s := NewMediaStore(newTestDB(t), testLogger())

	media := models.MediaRecord{MediaURL: "https://cdn.example.com/a.png", AuthorEmail: alice, Title: "old"}
	if _, err := s.Create(&media); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	matched, err := s.UpdateTitle(media.ID, "new")
	if err != nil {
		t.Fatalf("UpdateTitle() error: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected 1 matched row, got %d", matched)
	}

	got, err := s.GetByID(media.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Title != "new" {
		t.Errorf("title = %q, want %q", got.Title, "new")
	}
	if got.MediaURL != media.MediaURL {
		t.Errorf("untouched field changed: mediaUrl = %q", got.MediaURL)
	}
}

func TestMediaDelete_FreesURLForReuse(t *testing.T) {
	s := NewMediaStore(newTestDB(t), testLogger())

	media := models.MediaRecord{MediaURL: "https://cdn.example.com/a.png", AuthorEmail: alice}
	if _, err := s.Create(&media); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	deleted, err := s.Delete(media.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted row, got %d", deleted)
	}

	created, err := s.Create(&models.MediaRecord{MediaURL: "https://cdn.example.com/a.png", AuthorEmail: bob})
	if err != nil {
		t.Fatalf("Create() after delete error: %v", err)
	}
	if !created {
		t.Error("URL should be reusable after the record is deleted")
	}
}

func TestMediaListByAuthor(t *testing.T) {
	s := NewMediaStore(newTestDB(t), testLogger())

	urls := []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}
	for _, u := range urls {
		if _, err := s.Create(&models.MediaRecord{MediaURL: u, AuthorEmail: alice}); err != nil {
			t.Fatalf("Create(%s) error: %v", u, err)
		}
	}
	if _, err := s.Create(&models.MediaRecord{MediaURL: "https://cdn.example.com/c.png", AuthorEmail: bob}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	records, err := s.ListByAuthor(alice)
	if err != nil {
		t.Fatalf("ListByAuthor() error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records for alice, got %d", len(records))
	}
}

func TestTaskUpdate_PartialFields(t *testing.T) {
	s := NewTaskStore(newTestDB(t), testLogger())

	task := models.Task{MediaID: 7, Details: "watch intro"}
	if err := s.Create(&task); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	done := true
	matched, err := s.Update(task.ID, &done, nil)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected 1 matched row, got %d", matched)
	}

	tasks, err := s.ListByMedia(7)
	if err != nil {
		t.Fatalf("ListByMedia() error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if !tasks[0].Done {
		t.Error("done flag not updated")
	}
	if tasks[0].Details != "watch intro" {
		t.Errorf("untouched field changed: details = %q", tasks[0].Details)
	}
}

func TestTaskUpdate_AbsentID(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskStore(db, testLogger())

	done := true
	matched, err := s.Update(42, &done, nil)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if matched != 0 {
		t.Fatalf("expected 0 matched rows, got %d", matched)
	}

	var count int64
	db.Model(&models.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("update of an absent id created %d tasks", count)
	}
}

func TestTaskDelete(t *testing.T) {
	s := NewTaskStore(newTestDB(t), testLogger())

	task := models.Task{MediaID: 7}
	if err := s.Create(&task); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	deleted, err := s.Delete(task.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted row, got %d", deleted)
	}

	tasks, err := s.ListByMedia(7)
	if err != nil {
		t.Fatalf("ListByMedia() error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks after delete, got %+v", tasks)
	}
}
