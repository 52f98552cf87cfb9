package vehicle

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
)

func newMockRepo(t *testing.T) (repository.Vehicle, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

func metadataRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "number", "owner", "timestamp", "user_id", "has_image",
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "vehicles" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectCommit()

	v, err := repo.Create(context.Background(), &dto.VehicleCreate{
		Number:    "KA01AB1234",
		Owner:     "Alice",
		Image:     []byte{0xFF, 0xD8},
		Timestamp: "2026-08-29 12:00:00",
		UserID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), v.ID)
	assert.True(t, v.HasImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" WHERE id = (.+)`).
		WillReturnRows(metadataRows().
			AddRow(int64(5), "KA01AB1234", "Alice", "2026-08-29 12:00:00", int64(1), true))

	v, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "KA01AB1234", v.Number)
	assert.True(t, v.HasImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" WHERE id = (.+)`).
		WillReturnRows(metadataRows())

	v, err := repo.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" ORDER BY timestamp DESC`).
		WillReturnRows(metadataRows().
			AddRow(int64(2), "MH12CD5678", "Bob", "2026-08-29 12:00:05", int64(2), false).
			AddRow(int64(1), "KA01AB1234", "Alice", "2026-08-29 12:00:01", int64(1), true))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.False(t, records[0].HasImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" WHERE user_id = (.+) ORDER BY timestamp DESC`).
		WillReturnRows(metadataRows().
			AddRow(int64(1), "KA01AB1234", "Alice", "2026-08-29 12:00:01", int64(1), true))

	records, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithOwners_NullOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{
		"id", "number", "owner", "timestamp", "user_id", "has_image",
		"username", "email",
	}).
		AddRow(int64(1), "KA01AB1234", "Alice", "2026-08-29 12:00:01", int64(1), true,
			"alice", "a@x.com").
		AddRow(int64(2), "MH12CD5678", "Bob", "2026-08-29 12:00:05", int64(99), false,
			nil, nil)
	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" LEFT JOIN users ON users.id = vehicles.user_id`).
		WillReturnRows(rows)

	records, err := repo.ListWithOwners(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0].Username)
	// A dangling user_id scans as empty identity, not an error.
	assert.Empty(t, records[1].Username)
	assert.Empty(t, records[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image"}).
			AddRow(int64(3), []byte{0xFF, 0xD8}))

	data, err := repo.Image(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImage_NullPayload(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM "vehicles" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image"}).
			AddRow(int64(3), nil))

	data, err := repo.Image(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "vehicles" WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}
