package contentService

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
)

func TestCreateSkill(t *testing.T) {
	t.Run("appends after the store accepts", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.CreateSkill(context.Background(), content.CreateSkillRequest{
			Name:     "Go",
			Category: "backend",
		})

		require.Len(t, svc.skills, 1)
		assert.NotEmpty(t, svc.skills[0].ID)
		assert.Equal(t, "Go", svc.skills[0].Name)
		assert.Len(t, store.createdSkills, 1)
	})

	t.Run("store failure leaves the list unchanged", func(t *testing.T) {
		store := &fakeStore{createSkillErr: errors.New("insert failed")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.skills = []entity.Skill{{ID: "s1", Name: "Go"}}

		svc.CreateSkill(context.Background(), content.CreateSkillRequest{
			Name:     "Rust",
			Category: "backend",
		})

		assert.Len(t, svc.skills, 1)
	})
}

func TestUpdateSkill(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.skills = []entity.Skill{{ID: "s1", Name: "Go", Category: "backend"}}

	// Empty fields mean no change on that field.
	svc.UpdateSkill(context.Background(), "s1", content.UpdateSkillRequest{Name: "Golang"})

	assert.Equal(t, "Golang", svc.skills[0].Name)
	assert.Equal(t, "backend", svc.skills[0].Category)
}

func TestDeleteSkill(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.skills = []entity.Skill{
		{ID: "s1", Name: "Go"},
		{ID: "s2", Name: "SQL"},
	}

	svc.DeleteSkill(context.Background(), "s1")

	require.Len(t, svc.skills, 1)
	assert.Equal(t, "s2", svc.skills[0].ID)
}

func TestCreateProject(t *testing.T) {
	t.Run("adopts the store-assigned id", func(t *testing.T) {
		store := &fakeStore{nextProjectID: 41}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.CreateProject(context.Background(), content.CreateProjectRequest{
			Title: "Portfolio Site",
		})

		require.Len(t, svc.projects, 1)
		assert.Equal(t, int64(42), svc.projects[0].ID)
	})

	t.Run("store failure leaves the list unchanged", func(t *testing.T) {
		store := &fakeStore{createProjectErr: errors.New("insert failed")}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.CreateProject(context.Background(), content.CreateProjectRequest{
			Title: "Doomed",
		})

		assert.Len(t, svc.projects, 0)
	})
}

func TestUpdateProject(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.projects = []entity.Project{{ID: 7, Title: "Old Title", Color: "blue"}}

	svc.UpdateProject(context.Background(), 7, content.UpdateProjectRequest{Title: "New Title"})

	assert.Equal(t, "New Title", svc.projects[0].Title)
	assert.Equal(t, "blue", svc.projects[0].Color)
}

func TestDeleteProject(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.projects = []entity.Project{{ID: 7}, {ID: 8}}

	svc.DeleteProject(context.Background(), 7)

	require.Len(t, svc.projects, 1)
	assert.Equal(t, int64(8), svc.projects[0].ID)
}

func TestCreateTestimonial(t *testing.T) {
	t.Run("appends after the store accepts", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())

		svc.CreateTestimonial(context.Background(), content.CreateTestimonialRequest{
			Text:   "Great work",
			Author: "ana",
		})

		require.Len(t, svc.testimonials, 1)
		assert.NotEmpty(t, svc.testimonials[0].ID)
	})

	t.Run("store failure leaves the list unchanged", func(t *testing.T) {
		store := &fakeStore{createTestimonialErr: errors.New("insert failed")}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.CreateTestimonial(context.Background(), content.CreateTestimonialRequest{
			Text:   "lost",
			Author: "ben",
		})

		assert.Len(t, svc.testimonials, 0)
	})
}
