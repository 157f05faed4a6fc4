package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/models"
)

func TestInsert_RoundTrip(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	due := time.Date(2031, time.March, 4, 9, 30, 15, 0, time.UTC)
	inputs := []models.NewTodo{
		{Title: "Write report", Description: strPtr("quarterly numbers"), DueDate: timePtr(due), Completed: false},
		{Title: "Water plants", Description: nil, DueDate: timePtr(due.Add(48 * time.Hour)), Completed: true},
		{Title: "Unicode ✓ title", Description: strPtr(""), DueDate: timePtr(due.In(time.FixedZone("UTC+5", 5*3600))), Completed: false},
	}

	for _, in := range inputs {
		require.NoError(t, repo.Insert(ctx, in))
	}

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, len(inputs))

	for i, in := range inputs {
		got := todos[i]
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, in.Title, got.Title)
		assert.Equal(t, in.Description, got.Description)
		require.NotNil(t, got.DueDate)
		assert.True(t, in.DueDate.Equal(*got.DueDate), "due date %v != %v", *in.DueDate, *got.DueDate)
		assert.Equal(t, in.Completed, got.Completed)
	}
}

func TestInsert_DueDateStoredAsISOString(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	due := time.Date(2030, time.January, 2, 3, 4, 5, 600_000_000, time.FixedZone("CET", 3600))
	require.NoError(t, repo.Insert(ctx, models.NewTodo{Title: "ISO", DueDate: &due}))

	var stored string
	require.NoError(t, h.db.QueryRowContext(ctx, "SELECT dueDate FROM todos").Scan(&stored))
	assert.Equal(t, "2030-01-02T02:04:05.600Z", stored)
}

func TestInsert_DefaultDueDateIsNow(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	before := time.Now()
	require.NoError(t, repo.Insert(ctx, models.NewTodo{Title: "No due date"}))

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.NotNil(t, todos[0].DueDate)
	assert.WithinDuration(t, before, *todos[0].DueDate, 2*time.Second)
}

func TestInsert_DefaultDueDateUsesClock(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	frozen := time.Date(2029, time.July, 1, 12, 0, 0, 0, time.UTC)
	repo.SetClock(fixedClock(frozen))

	todo, err := repo.Create(context.Background(), models.NewTodo{Title: "Frozen"})
	require.NoError(t, err)
	require.NotNil(t, todo.DueDate)
	assert.True(t, frozen.Equal(*todo.DueDate))
}

func TestInsert_BooleanCoercion(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	done, err := repo.Create(ctx, models.NewTodo{Title: "done", Completed: true})
	require.NoError(t, err)
	open, err := repo.Create(ctx, models.NewTodo{Title: "open", Completed: false})
	require.NoError(t, err)

	assert.True(t, done.Completed)
	assert.False(t, open.Completed)

	var raw int
	require.NoError(t, h.db.QueryRowContext(ctx, "SELECT completed FROM todos WHERE id = ?", done.ID).Scan(&raw))
	assert.Equal(t, 1, raw)
	require.NoError(t, h.db.QueryRowContext(ctx, "SELECT completed FROM todos WHERE id = ?", open.ID).Scan(&raw))
	assert.Equal(t, 0, raw)
}

func TestInsert_NilDescriptionIsNull(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.NewTodo{Title: "no description"}))

	var isNull bool
	require.NoError(t, h.db.QueryRowContext(ctx, "SELECT description IS NULL FROM todos").Scan(&isNull))
	assert.True(t, isNull)
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.NewTodo{Title: "first"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.NewTodo{Title: "second"})
	require.NoError(t, err)

	firstID, err := ParseID(first.ID)
	require.NoError(t, err)
	secondID, err := ParseID(second.ID)
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	// AUTOINCREMENT never reuses a deleted id
	require.NoError(t, repo.Delete(ctx, second.ID))
	third, err := repo.Create(ctx, models.NewTodo{Title: "third"})
	require.NoError(t, err)
	assert.NotEqual(t, second.ID, third.ID)
}

func TestFetchAll_Empty(t *testing.T) {
	h := setupTestDB(t)

	todos, err := NewTodoRepo(h).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestGetByID(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.NewTodo{Title: "lookup"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByID(ctx, "9999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_OverwritesAllFields(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.NewTodo{Title: "before", Description: strPtr("old")})
	require.NoError(t, err)

	due := time.Date(2032, time.December, 24, 18, 0, 0, 0, time.UTC)
	updated := &models.Todo{ID: created.ID, Title: "after", Description: nil, DueDate: &due, Completed: true}
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Nil(t, got.Description)
	assert.True(t, due.Equal(*got.DueDate))
	assert.True(t, got.Completed)
}

func TestUpdate_Idempotent(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.NewTodo{Title: "twice"})
	require.NoError(t, err)

	due := time.Date(2033, time.May, 5, 5, 5, 5, 0, time.UTC)
	change := &models.Todo{ID: created.ID, Title: "changed", Description: strPtr("d"), DueDate: &due, Completed: true}

	require.NoError(t, repo.Update(ctx, change))
	once, err := repo.FetchAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, change))
	twice, err := repo.FetchAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestUpdate_MissingIDIsSilent(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.NewTodo{Title: "untouched"}))

	err := repo.Update(ctx, &models.Todo{ID: "424242", Title: "ghost"})
	assert.NoError(t, err)

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "untouched", todos[0].Title)
}

func TestWrites_MalformedIDMatchesNothing(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	kept, err := repo.Create(ctx, models.NewTodo{Title: "untouched"})
	require.NoError(t, err)

	for _, id := range []string{"", "abc", "0", "-1", "1.5"} {
		assert.NoError(t, repo.Update(ctx, &models.Todo{ID: id, Title: "x"}), id)
		assert.NoError(t, repo.SetCompleted(ctx, id, true), id)
		assert.NoError(t, repo.Delete(ctx, id), id)
	}

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, kept, todos[0])
}

func TestSetCompleted(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.NewTodo{Title: "toggle", Description: strPtr("keep me")})
	require.NoError(t, err)

	require.NoError(t, repo.SetCompleted(ctx, created.ID, true))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.DueDate, got.DueDate)

	require.NoError(t, repo.SetCompleted(ctx, created.ID, false))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	assert.NoError(t, repo.SetCompleted(ctx, "777", true))
}

func TestDelete_Finality(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	keep, err := repo.Create(ctx, models.NewTodo{Title: "keep"})
	require.NoError(t, err)
	drop, err := repo.Create(ctx, models.NewTodo{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, drop.ID))

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)

	// Deleting again is not an error
	assert.NoError(t, repo.Delete(ctx, drop.ID))
}

func TestFetchAll_DecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		dueDate   any
		completed any
		column    string
	}{
		{name: "malformed due date", dueDate: "next tuesday", completed: 0, column: "dueDate"},
		{name: "completed out of range", dueDate: "2030-01-01T00:00:00.000Z", completed: 2, column: "completed"},
		{name: "completed NULL", dueDate: "2030-01-01T00:00:00.000Z", completed: nil, column: "completed"},
		{name: "due date stored as number", dueDate: 12345, completed: 0, column: "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupTestDB(t)
			insertRaw(t, h, "bad row", nil, tt.dueDate, tt.completed)

			_, err := NewTodoRepo(h).FetchAll(context.Background())
			require.Error(t, err)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %T: %v", err, err)
			assert.Equal(t, tt.column, decodeErr.Column)
			assert.False(t, IsStorageError(err))
		})
	}
}

func TestFetchAll_NullDueDateDecodesToNil(t *testing.T) {
	h := setupTestDB(t)
	insertRaw(t, h, "legacy row", nil, nil, 0)

	todos, err := NewTodoRepo(h).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Nil(t, todos[0].DueDate)
}

func TestOperations_FailWithStorageErrorWhenTableMissing(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	_, err := h.db.ExecContext(ctx, "DROP TABLE todos")
	require.NoError(t, err)

	assert.True(t, IsStorageError(repo.Insert(ctx, models.NewTodo{Title: "x"})))
	_, err = repo.FetchAll(ctx)
	assert.True(t, IsStorageError(err))
	assert.True(t, IsStorageError(repo.Update(ctx, &models.Todo{ID: "1", Title: "x"})))
	assert.True(t, IsStorageError(repo.Delete(ctx, "1")))
}

// TestScenario_BuyMilk walks a todo through insert, update and delete
func TestScenario_BuyMilk(t *testing.T) {
	h := setupTestDB(t)
	repo := NewTodoRepo(h)
	ctx := context.Background()

	insertedAt := time.Now()
	require.NoError(t, repo.Insert(ctx, models.NewTodo{
		Title:       "Buy milk",
		Description: strPtr("2%"),
		DueDate:     nil,
		Completed:   false,
	}))

	todos, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	milk := todos[0]
	assert.Equal(t, "Buy milk", milk.Title)
	require.NotNil(t, milk.Description)
	assert.Equal(t, "2%", *milk.Description)
	assert.False(t, milk.Completed)
	require.NotNil(t, milk.DueDate)
	assert.WithinDuration(t, insertedAt, *milk.DueDate, 2*time.Second)

	milk.Completed = true
	require.NoError(t, repo.Update(ctx, milk))

	todos, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, milk.ID, todos[0].ID)
	assert.True(t, todos[0].Completed)

	require.NoError(t, repo.Delete(ctx, milk.ID))

	todos, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
