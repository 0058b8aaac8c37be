package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonUpsert_GoalListsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()

	goals := model.StringList{"Wire the sensor", "Read analog values", "Plot the output"}
	prereqs := model.StringList{"Basic soldering"}

	lesson, err := repo.Upsert(ctx, &model.Lesson{
		Slug:            "analog-reading",
		Title:           "Reading analog sensors",
		LearningGoals:   goals,
		Prerequisites:   prereqs,
		DurationMinutes: intPtr(45),
		Published:       true,
	})
	require.NoError(t, err)

	fetched, err := repo.FindBySlug(ctx, "analog-reading")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, lesson.ID, fetched.ID)
	assert.Equal(t, goals, fetched.LearningGoals)
	assert.Equal(t, prereqs, fetched.Prerequisites)
	require.NotNil(t, fetched.DurationMinutes)
	assert.Equal(t, 45, *fetched.DurationMinutes)

	t.Run("reordered goals persist in the new order", func(t *testing.T) {
		lesson.LearningGoals = model.StringList{"Plot the output", "Wire the sensor"}
		updated, err := repo.Upsert(ctx, lesson)
		require.NoError(t, err)
		assert.Equal(t, model.StringList{"Plot the output", "Wire the sensor"}, updated.LearningGoals)
	})

	t.Run("empty goal list scans back empty", func(t *testing.T) {
		created, err := repo.Upsert(ctx, &model.Lesson{
			Slug:  "no-goals",
			Title: "Freeform lesson",
		})
		require.NoError(t, err)
		assert.Empty(t, created.LearningGoals)
	})
}

func TestLessonList_PublishedFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &model.Lesson{Slug: "live-lesson", Title: "Build a line follower", Published: true})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &model.Lesson{Slug: "draft-lesson", Title: "Unfinished draft"})
	require.NoError(t, err)

	lessons, err := repo.List(ctx, dto.ResourceFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "live-lesson", lessons[0].Slug)

	lessons, err = repo.List(ctx, dto.ResourceFilter{Search: "draft"})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "draft-lesson", lessons[0].Slug)
}

func TestLessonSetProducts(t *testing.T) {
	db := setupTestDB(t)
	lessonRepo := NewLessonRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	lesson, err := lessonRepo.Upsert(ctx, &model.Lesson{Slug: "servo-basics", Title: "Servo basics"})
	require.NoError(t, err)

	productA := seedProduct(t, productRepo, "servo-a", true)
	productB := seedProduct(t, productRepo, "servo-b", true)

	require.NoError(t, lessonRepo.SetProducts(ctx, lesson.ID, []uuid.UUID{productA.ID, productB.ID}))

	ids, err := lessonRepo.LinkedProductIDs(ctx, lesson.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{productA.ID, productB.ID}, ids)

	t.Run("set replaces rather than appends", func(t *testing.T) {
		require.NoError(t, lessonRepo.SetProducts(ctx, lesson.ID, []uuid.UUID{productB.ID}))
		ids, err := lessonRepo.LinkedProductIDs(ctx, lesson.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{productB.ID}, ids)
	})

	t.Run("delete clears the links too", func(t *testing.T) {
		require.NoError(t, lessonRepo.Delete(ctx, lesson.ID))
		var linkCount int64
		require.NoError(t, db.Model(&model.LessonLink{}).Where("lesson_id = ?", lesson.ID).Count(&linkCount).Error)
		assert.Zero(t, linkCount)
	})
}
