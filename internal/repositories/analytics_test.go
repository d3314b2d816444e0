package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticsReadRepository_PopularBooks(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	bookRepo := NewBookWriteRepository(db, nil)
	userRepo := NewUserWriteRepository(db, nil)
	txnRepo := NewTransactionWriteRepository(db, nil)
	repo := NewAnalyticsReadRepository(db)

	dune, err := bookRepo.Save(ctx, "Dune", "Frank Herbert", "isbn-1", 10, "")
	assert.NoError(t, err)
	messiah, err := bookRepo.Save(ctx, "Dune Messiah", "Frank Herbert", "isbn-2", 10, "")
	assert.NoError(t, err)
	dispossessed, err := bookRepo.Save(ctx, "The Dispossessed", "Ursula K. Le Guin", "isbn-3", 10, "")
	assert.NoError(t, err)

	borrowedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dueDate := borrowedAt.AddDate(0, 0, 14)

	// Dune: 3 loans, The Dispossessed: 2, Dune Messiah: 1. A closed loan
	// still counts toward popularity.
	counts := map[string]int{"Dune": 3, "The Dispossessed": 2, "Dune Messiah": 1}

	for i := 0; i < counts["Dune"]; i++ {
		user, err := userRepo.Save(ctx, "d"+string(rune('a'+i)), "d"+string(rune('a'+i))+"@example.com", "R", "member", "h")
		assert.NoError(t, err)
		txn, err := txnRepo.Insert(ctx, dune.BookID, user.UserID, borrowedAt, dueDate)
		assert.NoError(t, err)
		if i == 0 {
			_, err = txnRepo.Close(ctx, txn.TransactionID, borrowedAt.AddDate(0, 0, 7))
			assert.NoError(t, err)
		}
	}
	for i := 0; i < counts["The Dispossessed"]; i++ {
		user, err := userRepo.Save(ctx, "u"+string(rune('a'+i)), "u"+string(rune('a'+i))+"@example.com", "R", "member", "h")
		assert.NoError(t, err)
		_, err = txnRepo.Insert(ctx, dispossessed.BookID, user.UserID, borrowedAt, dueDate)
		assert.NoError(t, err)
	}
	for i := 0; i < counts["Dune Messiah"]; i++ {
		user, err := userRepo.Save(ctx, "m"+string(rune('a'+i)), "m"+string(rune('a'+i))+"@example.com", "R", "member", "h")
		assert.NoError(t, err)
		_, err = txnRepo.Insert(ctx, messiah.BookID, user.UserID, borrowedAt, dueDate)
		assert.NoError(t, err)
	}

	popular, err := repo.PopularBooks(ctx)
	assert.NoError(t, err)
	assert.Len(t, popular, 3)

	assert.Equal(t, "Dune", popular[0].Title)
	assert.Equal(t, 3, popular[0].BorrowCount)
	assert.Equal(t, "The Dispossessed", popular[1].Title)
	assert.Equal(t, 2, popular[1].BorrowCount)
	assert.Equal(t, "Dune Messiah", popular[2].Title)
	assert.Equal(t, 1, popular[2].BorrowCount)
}

func TestAnalyticsReadRepository_PopularBooks_NeverBorrowedExcluded(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	bookRepo := NewBookWriteRepository(db, nil)
	repo := NewAnalyticsReadRepository(db)

	_, err := bookRepo.Save(ctx, "Untouched", "Nobody", "isbn-1", 10, "")
	assert.NoError(t, err)

	popular, err := repo.PopularBooks(ctx)
	assert.NoError(t, err)
	assert.Empty(t, popular)
}

func TestAnalyticsReadRepository_PopularAuthors(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	bookRepo := NewBookWriteRepository(db, nil)
	userRepo := NewUserWriteRepository(db, nil)
	txnRepo := NewTransactionWriteRepository(db, nil)
	repo := NewAnalyticsReadRepository(db)

	dune, err := bookRepo.Save(ctx, "Dune", "Frank Herbert", "isbn-1", 10, "")
	assert.NoError(t, err)
	messiah, err := bookRepo.Save(ctx, "Dune Messiah", "Frank Herbert", "isbn-2", 10, "")
	assert.NoError(t, err)
	dispossessed, err := bookRepo.Save(ctx, "The Dispossessed", "Ursula K. Le Guin", "isbn-3", 10, "")
	assert.NoError(t, err)

	borrowedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dueDate := borrowedAt.AddDate(0, 0, 14)

	userA, err := userRepo.Save(ctx, "ua", "ua@example.com", "A", "member", "h")
	assert.NoError(t, err)
	userB, err := userRepo.Save(ctx, "ub", "ub@example.com", "B", "member", "h")
	assert.NoError(t, err)

	// Herbert gets one loan on each of two books, Le Guin one loan total;
	// author counts sum across books.
	_, err = txnRepo.Insert(ctx, dune.BookID, userA.UserID, borrowedAt, dueDate)
	assert.NoError(t, err)
	_, err = txnRepo.Insert(ctx, messiah.BookID, userA.UserID, borrowedAt, dueDate)
	assert.NoError(t, err)
	_, err = txnRepo.Insert(ctx, dispossessed.BookID, userB.UserID, borrowedAt, dueDate)
	assert.NoError(t, err)

	authors, err := repo.PopularAuthors(ctx)
	assert.NoError(t, err)
	assert.Len(t, authors, 2)

	assert.Equal(t, "Frank Herbert", authors[0].Author)
	assert.Equal(t, 2, authors[0].BorrowCount)
	assert.Equal(t, "Ursula K. Le Guin", authors[1].Author)
	assert.Equal(t, 1, authors[1].BorrowCount)
}
