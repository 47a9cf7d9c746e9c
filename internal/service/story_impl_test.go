package service

import (
	"context"
	"net/http"
	"testing"

	"failcourse.com/internal/domain"
)

func TestStoryService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewStoryService(db, users)
	ctx := context.Background()

	mustRegister(t, users, "Ada", "ada@example.com", "x")
	mustRegister(t, users, "Bob", "bob@example.com", "x")

	created, err := svc.CreateStory(ctx, "ada@example.com", domain.StoryInput{
		Title: "Dropped out", Story: "I failed my exams.", Lesson: "Keep going", Tags: "exams,grit",
	})
	if err != nil {
		t.Fatalf("CreateStory() error = %v", err)
	}
	if created.ID == 0 || created.User != "Ada" {
		t.Errorf("created = %+v", created)
	}

	if _, err := svc.CreateStory(ctx, "bob@example.com", domain.StoryInput{Title: "Startup", Story: "It folded."}); err != nil {
		t.Fatal(err)
	}

	all, err := svc.ListStories(ctx)
	if err != nil {
		t.Fatalf("ListStories() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListStories() len = %d, want 2", len(all))
	}
	if all[0].User != "Ada" || all[1].User != "Bob" {
		t.Errorf("authors = %q, %q", all[0].User, all[1].User)
	}
	if all[0].Tags != "exams,grit" || all[0].Lesson != "Keep going" {
		t.Errorf("story[0] = %+v", all[0])
	}

	mine, err := svc.ListUserStories(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("ListUserStories() error = %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Startup" {
		t.Errorf("ListUserStories() = %+v", mine)
	}
	if mine[0].User != "" {
		t.Error("per-user listing should not carry the author name")
	}
}

func TestStoryService_Errors(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db, NewUserService(db))
	ctx := context.Background()

	_, err := svc.CreateStory(ctx, "ada@example.com", domain.StoryInput{Title: "No story"})
	assertAppError(t, err, http.StatusBadRequest, "Email, title and story are required")

	_, err = svc.CreateStory(ctx, "ghost@example.com", domain.StoryInput{Title: "T", Story: "S"})
	assertAppError(t, err, http.StatusNotFound, "User not found")

	_, err = svc.ListUserStories(ctx, "")
	assertAppError(t, err, http.StatusBadRequest, "Email is required")

	_, err = svc.ListUserStories(ctx, "ghost@example.com")
	assertAppError(t, err, http.StatusNotFound, "User not found")
}

func TestStoryService_ListEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db, NewUserService(db))

	stories, err := svc.ListStories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stories == nil || len(stories) != 0 {
		t.Errorf("ListStories() = %#v, want empty non-nil slice", stories)
	}
}
