package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/db"
)

func TestListNotifications_UnreadFirstThenNewest(t *testing.T) {
	mock := &mockDB{
		notifications: []db.UserNotification{
			{ID: "n-1", UserID: "u1", Read: true, CreatedAt: "2024-06-03"},
			{ID: "n-2", UserID: "u1", Read: false, CreatedAt: "2024-06-01"},
			{ID: "n-3", UserID: "u2", Read: false, CreatedAt: "2024-06-02"},
			{ID: "n-4", UserID: "u1", Read: false, CreatedAt: "2024-06-02"},
		},
	}

	mine, err := ListNotifications(context.Background(), mock, zap.NewNop(), "u1")
	require.NoError(t, err)

	require.Len(t, mine, 3)
	assert.Equal(t, "n-4", mine[0].ID) // unread, newest
	assert.Equal(t, "n-2", mine[1].ID) // unread, older
	assert.Equal(t, "n-1", mine[2].ID) // read last
}

func TestMarkNotificationRead_FlipsFlagOnce(t *testing.T) {
	mock := &mockDB{
		notifications: []db.UserNotification{
			{ID: "n-1", UserID: "u1", Read: false},
		},
	}

	updated, err := MarkNotificationRead(context.Background(), mock, zap.NewNop(), "n-1")
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, []string{"n-1"}, mock.markedRead)
}

func TestMarkNotificationRead_AlreadyReadIsNoOp(t *testing.T) {
	mock := &mockDB{
		notifications: []db.UserNotification{
			{ID: "n-1", UserID: "u1", Read: true},
		},
	}

	updated, err := MarkNotificationRead(context.Background(), mock, zap.NewNop(), "n-1")
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Empty(t, mock.markedRead)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	mock := &mockDB{}

	_, err := MarkNotificationRead(context.Background(), mock, zap.NewNop(), "nope")
	assert.Error(t, err)
}

func TestBirthdayNotifications_BroadcastsExcludingCelebrant(t *testing.T) {
	mock := &mockDB{
		users: []db.User{
			{ID: "u1", FirstName: "Anna", LastName: "Kemp", Birthday: "1990-06-01"},
			{ID: "u2", FirstName: "Ben", LastName: "Osei"},
			{ID: "u3", FirstName: "Cleo", LastName: "Marsh", Birthday: "1985-12-24"},
		},
	}
	today := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	sent, err := BirthdayNotifications(context.Background(), mock, zap.NewNop(), today)
	require.NoError(t, err)

	require.Len(t, sent, 2)
	assert.Equal(t, "u2", sent[0].UserID)
	assert.Equal(t, "u3", sent[1].UserID)
	assert.Contains(t, sent[0].Message, "Anna Kemp")
	assert.Len(t, mock.insertedNotifs, 2)
}

func TestBirthdayNotifications_SecondRunSameDayIsIdempotent(t *testing.T) {
	mock := &mockDB{
		users: []db.User{
			{ID: "u1", FirstName: "Anna", LastName: "Kemp", Birthday: "1990-06-01"},
			{ID: "u2", FirstName: "Ben", LastName: "Osei"},
		},
	}
	today := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	first, err := BirthdayNotifications(context.Background(), mock, zap.NewNop(), today)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Simulate the first batch having been persisted
	mock.notifications = append(mock.notifications, first...)

	second, err := BirthdayNotifications(context.Background(), mock, zap.NewNop(), today)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, mock.insertedNotifs, 1)
}
