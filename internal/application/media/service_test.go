package media_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

func upload(name, body string) media.File {
	return media.File{Filename: name, Size: int64(len(body)), ContentType: "image/png", Body: strings.NewReader(body)}
}

func TestService_Store(t *testing.T) {
	store := storage.NewMemoryImageStore()
	svc := media.NewService(store, 1024, media.WithClock(fixedNow))

	name, err := svc.Store(context.Background(), upload("Exhaust Pipe.PNG", "png"))
	require.NoError(t, err)
	assert.Equal(t, "20240501_093000_Exhaust_Pipe.PNG", name)
	assert.Equal(t, "/static/uploads/20240501_093000_Exhaust_Pipe.PNG", svc.URL(name))

	data, ok := store.Get(name)
	require.True(t, ok)
	assert.Equal(t, "png", string(data))
}

func TestService_Store_Rejects(t *testing.T) {
	svc := media.NewService(storage.NewMemoryImageStore(), 4)

	_, err := svc.Store(context.Background(), upload("notes.txt", "x"))
	assert.ErrorIs(t, err, media.ErrInvalidFormat)
	assert.EqualError(t, err, "Invalid file format")

	_, err = svc.Store(context.Background(), upload("big.png", "12345"))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.Store(context.Background(), media.File{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestService_Replace(t *testing.T) {
	store := storage.NewMemoryImageStore()
	svc := media.NewService(store, 0, media.WithClock(fixedNow))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "old.png", strings.NewReader("old"), 3, ""))
	name, err := svc.Replace(ctx, "old.png", upload("new.png", "new"))
	require.NoError(t, err)

	_, ok := store.Get("old.png")
	assert.False(t, ok)
	_, ok = store.Get(name)
	assert.True(t, ok)
}

type failingStore struct{ *storage.MemoryImageStore }

func (failingStore) Delete(context.Context, string) error { return errors.New("disk gone") }

func TestService_RemoveIgnoresErrors(t *testing.T) {
	svc := media.NewService(failingStore{storage.NewMemoryImageStore()}, 0)
	assert.NotPanics(t, func() { svc.Remove(context.Background(), "x.png") })
	assert.Equal(t, "", svc.URL(""))
}
