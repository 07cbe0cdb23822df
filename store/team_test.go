package store

import (
	"testing"

	"pluggedin/models"
)

func TestTeamCreate_DuplicateNameAndLeader(t *testing.T) {
	s := NewTeamStore(newTestDB(t), testLogger())

	team := models.Team{Name: "builders", Leader: alice, Members: []string{bob}}
	created, err := s.Create(&team)
	if err != nil || !created {
		t.Fatalf("Create() = (%v, %v), want (true, nil)", created, err)
	}

	created, err = s.Create(&models.Team{Name: "builders", Leader: alice})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created {
		t.Error("duplicate (name, leader) must not create a second team")
	}

	// Same name under a different leader is a different team
	created, err = s.Create(&models.Team{Name: "builders", Leader: bob})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if !created {
		t.Error("same name with a different leader should be allowed")
	}
}

func TestTeamPatchByLeader_UpdatesMembers(t *testing.T) {
	s := NewTeamStore(newTestDB(t), testLogger())

	if _, err := s.Create(&models.Team{Name: "builders", Leader: alice, Members: []string{bob}}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	members := []string{bob, carol}
	matched, err := s.PatchByLeader(alice, nil, &members)
	if err != nil {
		t.Fatalf("PatchByLeader() error: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected 1 matched row, got %d", matched)
	}

	team, err := s.GetByLeader(alice)
	if err != nil {
		t.Fatalf("GetByLeader() error: %v", err)
	}
	if len(team.Members) != 2 || team.Members[0] != bob || team.Members[1] != carol {
		t.Errorf("members = %+v, want [%s %s]", team.Members, bob, carol)
	}
	if team.Name != "builders" {
		t.Errorf("untouched field changed: name = %q", team.Name)
	}
}

func TestTeamGetByLeader_Absent(t *testing.T) {
	s := NewTeamStore(newTestDB(t), testLogger())

	team, err := s.GetByLeader("ghost@example.com")
	if err != nil {
		t.Fatalf("GetByLeader() error: %v", err)
	}
	if team != nil {
		t.Errorf("expected nil for an absent team, got %+v", team)
	}
}

func TestReviewsAreAppendOnlyInOrder(t *testing.T) {
	s := NewReviewStore(newTestDB(t), testLogger())

	for i, text := range []string{"great", "good", "fine"} {
		review := models.Review{Author: alice, Text: text, Rating: 5 - i}
		if err := s.Create(&review); err != nil {
			t.Fatalf("Create(%q) error: %v", text, err)
		}
	}

	reviews, err := s.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	if reviews[0].Text != "great" || reviews[2].Text != "fine" {
		t.Errorf("reviews out of insertion order: %+v", reviews)
	}
}
