package services

import (
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomCount(t *testing.T, svc *RoomService) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.DB.Model(&models.Room{}).Count(&count).Error)
	return count
}

func TestRoomService_Create(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	assert.NotZero(t, room.ID)
	assert.Equal(t, "Room 1", room.Number)
	assert.Equal(t, 25, room.Size)
	assert.Equal(t, 100, room.Price)
	assert.EqualValues(t, 1, roomCount(t, svc))
}

func TestRoomService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateRoomInput
		wantField string
	}{
		{"zero size", CreateRoomInput{Number: "Room 1", Size: 0, Price: 100}, "size"},
		{"negative size", CreateRoomInput{Number: "Room 1", Size: -5, Price: 100}, "size"},
		{"zero price", CreateRoomInput{Number: "Room 1", Size: 25, Price: 0}, "price"},
		{"negative price", CreateRoomInput{Number: "Room 1", Size: 25, Price: -100}, "price"},
		{"blank number", CreateRoomInput{Number: "   ", Size: 25, Price: 100}, "number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRoomService(newTestDB(t))

			_, err := svc.Create(tt.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.wantField)
			assert.EqualValues(t, 0, roomCount(t, svc), "nothing should be persisted")
		})
	}
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	_, err = svc.Create(CreateRoomInput{Number: "Room 1", Size: 30, Price: 200})

	var duplicateErr *DuplicateError
	require.ErrorAs(t, err, &duplicateErr)
	assert.Equal(t, "number", duplicateErr.Field)
	assert.EqualValues(t, 1, roomCount(t, svc))
}

func TestRoomService_GetByID_NotFound(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomService_Update_Partial(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	room, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	newPrice := 150
	updated, err := svc.Update(room.ID, UpdateRoomInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 150, updated.Price)
	assert.Equal(t, "Room 1", updated.Number, "untouched field kept")
	assert.Equal(t, 25, updated.Size, "untouched field kept")

	reloaded, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, reloaded.Price)
}

func TestRoomService_Update_RevalidatesMergedRecord(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	room, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	zero := 0
	_, err = svc.Update(room.ID, UpdateRoomInput{Size: &zero})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "size")

	reloaded, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, reloaded.Size, "invalid update must not persist")
}

func TestRoomService_Update_NoChangesIsNoOp(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	room, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	before, err := svc.GetByID(room.ID)
	require.NoError(t, err)

	samePrice := 100
	_, err = svc.Update(room.ID, UpdateRoomInput{Price: &samePrice})
	require.NoError(t, err)

	after, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt), "no-op must not write")
}

func TestRoomService_Update_NotFound(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	price := 100
	_, err := svc.Update(99, UpdateRoomInput{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomService_Delete(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	room, err := svc.Create(CreateRoomInput{Number: "Room 1", Size: 25, Price: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(room.ID))
	assert.EqualValues(t, 0, roomCount(t, svc))

	assert.ErrorIs(t, svc.Delete(room.ID), ErrNotFound)
}
