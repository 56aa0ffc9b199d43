package instanceedit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reactome/releasefetch/instanceedit"
	"github.com/reactome/releasefetch/instanceedit/mocks"
)

var curator = &instanceedit.Instance{DBID: 140537, SchemaClass: instanceedit.ClassPerson, DisplayName: "Weiser, J"}

func TestCreateDefault(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.April, 1, 9, 30, 15, 250, time.UTC)

	t.Run("builds without storing", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(curator, nil)

		edit, err := instanceedit.CreateDefault(context.Background(), adaptor, curator.DBID, false, "UniProt update", now)
		require.NoError(t, err)

		require.Equal(t, instanceedit.ClassInstanceEdit, edit.SchemaClass)
		require.Same(t, curator, edit.Author)
		require.Equal(t, "UniProt update", edit.Note)
		require.Equal(t, time.Date(2024, time.April, 1, 9, 30, 15, 0, time.UTC), edit.DateTime)
		require.Equal(t, "Weiser, J, 2024-04-01", edit.DisplayName)
		require.Zero(t, edit.DBID)
		require.Zero(t, adaptor.StoreInstanceCallCount())

		_, personID := adaptor.FetchInstanceArgsForCall(0)
		require.Equal(t, curator.DBID, personID)
	})

	t.Run("stores and keeps the new DB_ID", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(curator, nil)
		adaptor.StoreInstanceReturns(9876543, nil)

		edit, err := instanceedit.CreateDefault(context.Background(), adaptor, curator.DBID, true, "note", now)
		require.NoError(t, err)
		require.Equal(t, int64(9876543), edit.DBID)

		_, stored := adaptor.StoreInstanceArgsForCall(0)
		require.Same(t, edit, stored)
	})

	t.Run("missing person", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(nil, nil)

		_, err := instanceedit.CreateDefault(context.Background(), adaptor, 42, true, "note", now)
		require.ErrorIs(t, err, instanceedit.ErrMissingPerson)
		require.ErrorIs(t, err, instanceedit.ErrDatabase)

		var missing *instanceedit.MissingPersonError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, int64(42), missing.PersonID)
		require.Zero(t, adaptor.StoreInstanceCallCount())
	})

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		cause := errors.New("connection lost")
		adaptor.FetchInstanceReturns(nil, cause)

		_, err := instanceedit.CreateDefault(context.Background(), adaptor, 42, true, "note", now)

		var fetchErr *instanceedit.DataFetchError
		require.ErrorAs(t, err, &fetchErr)
		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, instanceedit.ErrDatabase)
		require.NotErrorIs(t, err, instanceedit.ErrMissingPerson)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(curator, nil)
		adaptor.StoreInstanceReturns(0, errors.New("duplicate key"))

		_, err := instanceedit.CreateDefault(context.Background(), adaptor, curator.DBID, true, "note", now)

		var storageErr *instanceedit.DataStorageError
		require.ErrorAs(t, err, &storageErr)
		require.ErrorIs(t, err, instanceedit.ErrDatabase)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores then updates", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(curator, nil)
		adaptor.StoreInstanceReturns(1001, nil)

		edit, err := instanceedit.Create(context.Background(), adaptor, curator.DBID, "org.reactome.release.uniprotupdate")
		require.NoError(t, err)
		require.Equal(t, "Inserted by org.reactome.release.uniprotupdate", edit.Note)
		require.Equal(t, int64(1001), edit.DBID)

		require.Equal(t, 1, adaptor.StoreInstanceCallCount())
		require.Equal(t, 1, adaptor.UpdateInstanceCallCount())
		_, updated := adaptor.UpdateInstanceArgsForCall(0)
		require.Same(t, edit, updated)
	})

	t.Run("update failure", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}
		adaptor.FetchInstanceReturns(curator, nil)
		adaptor.StoreInstanceReturns(1001, nil)
		adaptor.UpdateInstanceReturns(errors.New("lock wait timeout"))

		edit, err := instanceedit.Create(context.Background(), adaptor, curator.DBID, "test")
		require.Nil(t, edit)

		var updateErr *instanceedit.DataUpdateError
		require.ErrorAs(t, err, &updateErr)
		require.Equal(t, int64(1001), updateErr.DBID)
		require.ErrorIs(t, err, instanceedit.ErrDatabase)
	})

	t.Run("missing person stops before storing", func(t *testing.T) {
		t.Parallel()
		adaptor := &mocks.FakeAdaptor{}

		_, err := instanceedit.Create(context.Background(), adaptor, 7, "test")
		require.ErrorIs(t, err, instanceedit.ErrMissingPerson)
		require.Zero(t, adaptor.StoreInstanceCallCount())
		require.Zero(t, adaptor.UpdateInstanceCallCount())
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		edit *instanceedit.Instance
		want string
	}{
		{
			name: "author and date",
			edit: &instanceedit.Instance{Author: curator, DateTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
			want: "Weiser, J, 2024-01-02",
		},
		{
			name: "date only",
			edit: &instanceedit.Instance{DateTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
			want: "2024-01-02",
		},
		{
			name: "nothing known",
			edit: &instanceedit.Instance{SchemaClass: instanceedit.ClassInstanceEdit, DBID: 5},
			want: "InstanceEdit 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, instanceedit.DisplayName(tt.edit))
		})
	}
}
