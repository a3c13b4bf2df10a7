package blobstore_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	blobstoremock "github.com/KirkDiggler/pvm-hub/internal/blobstore/mock"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/testutils"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// storeContractSuite runs the same checks against every backend
type storeContractSuite struct {
	suite.Suite
	newStore func(t *testing.T) (blobstore.Store, func())
	store    blobstore.Store
	cleanup  func()
	ctx      context.Context
}

func (s *storeContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.store, s.cleanup = s.newStore(s.T())
}

func (s *storeContractSuite) TearDownTest() {
	s.cleanup()
}

func (s *storeContractSuite) TestMissingNamespaceIsNil() {
	data, err := s.store.Load(s.ctx, blobstore.NamespacePresets)
	s.NoError(err)
	s.Nil(data)
}

func (s *storeContractSuite) TestSaveThenLoad() {
	s.Require().NoError(s.store.Save(s.ctx, blobstore.NamespacePresets, []byte(`[{"id":"a","name":"Alpha"}]`)))

	records, err := blobstore.LoadAll[record](s.ctx, s.store, blobstore.NamespacePresets)
	s.Require().NoError(err)
	s.Equal([]record{{ID: "a", Name: "Alpha"}}, records)
}

func (s *storeContractSuite) TestSaveReplaces() {
	s.Require().NoError(blobstore.SaveAll(s.ctx, s.store, blobstore.NamespaceGuides, []record{{ID: "1"}, {ID: "2"}}))
	s.Require().NoError(blobstore.SaveAll(s.ctx, s.store, blobstore.NamespaceGuides, []record{{ID: "3"}}))

	records, err := blobstore.LoadAll[record](s.ctx, s.store, blobstore.NamespaceGuides)
	s.Require().NoError(err)
	s.Equal([]record{{ID: "3"}}, records)
}

func (s *storeContractSuite) TestNamespacesAreIndependent() {
	s.Require().NoError(blobstore.SaveAll(s.ctx, s.store, blobstore.NamespacePresets, []record{{ID: "p"}}))

	guides, err := blobstore.LoadAll[record](s.ctx, s.store, blobstore.NamespaceGuides)
	s.Require().NoError(err)
	s.Empty(guides)
	s.NotNil(guides)
}

func (s *storeContractSuite) TestEmptyListRoundTrip() {
	s.Require().NoError(blobstore.SaveAll[record](s.ctx, s.store, blobstore.NamespacePresets, nil))

	data, err := s.store.Load(s.ctx, blobstore.NamespacePresets)
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(data))
}

func (s *storeContractSuite) TestNamespaceRequired() {
	_, err := s.store.Load(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsInvalidArgument(s.store.Save(s.ctx, "", []byte(`[]`))))
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeContractSuite{newStore: func(t *testing.T) (blobstore.Store, func()) {
		return blobstore.NewMemory(), func() {}
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &storeContractSuite{newStore: func(t *testing.T) (blobstore.Store, func()) {
		client, _, cleanup := testutils.CreateTestRedisClient(t)
		store, err := blobstore.NewRedis(&blobstore.RedisConfig{Client: client, KeyPrefix: "pvmhub"})
		if err != nil {
			t.Fatal(err)
		}
		return store, cleanup
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &storeContractSuite{newStore: func(t *testing.T) (blobstore.Store, func()) {
		path := filepath.Join(t.TempDir(), "blobs.db")
		store, err := blobstore.NewSQLite(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		return store, func() { _ = store.Close() }
	}})
}

type BlobHelpersTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *blobstoremock.MockStore
	ctx   context.Context
}

func TestBlobHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(BlobHelpersTestSuite))
}

func (s *BlobHelpersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = blobstoremock.NewMockStore(s.ctrl)
	s.ctx = context.Background()
}

func (s *BlobHelpersTestSuite) TestLoadAllCorruptDocument() {
	s.store.EXPECT().Load(s.ctx, "presets").Return([]byte(`{"not":"a list"}`), nil)

	_, err := blobstore.LoadAll[record](s.ctx, s.store, "presets")
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *BlobHelpersTestSuite) TestLoadAllKeepsBackendCode() {
	s.store.EXPECT().Load(s.ctx, "presets").Return(nil, errors.Unavailable("down"))

	_, err := blobstore.LoadAll[record](s.ctx, s.store, "presets")
	s.True(errors.IsUnavailable(err))
}

func (s *BlobHelpersTestSuite) TestLoadAllNullDocument() {
	s.store.EXPECT().Load(s.ctx, "presets").Return([]byte(`null`), nil)

	records, err := blobstore.LoadAll[record](s.ctx, s.store, "presets")
	s.Require().NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *BlobHelpersTestSuite) TestSaveAllEncodesInOrder() {
	s.store.EXPECT().Save(s.ctx, "guides", []byte(`[{"id":"b","name":""},{"id":"a","name":""}]`)).Return(nil)

	s.NoError(blobstore.SaveAll(s.ctx, s.store, "guides", []record{{ID: "b"}, {ID: "a"}}))
}

func (s *BlobHelpersTestSuite) TestSaveAllPropagatesError() {
	s.store.EXPECT().Save(s.ctx, "guides", gomock.Any()).Return(errors.Unavailable("down"))

	err := blobstore.SaveAll(s.ctx, s.store, "guides", []record{{ID: "a"}})
	s.True(errors.IsUnavailable(err))
}

type RedisStoreErrorsTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	store blobstore.Store
}

func TestRedisStoreErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreErrorsTestSuite))
}

func (s *RedisStoreErrorsTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock

	var err error
	s.store, err = blobstore.NewRedis(&blobstore.RedisConfig{Client: client, KeyPrefix: "pvmhub"})
	s.Require().NoError(err)
}

func (s *RedisStoreErrorsTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisStoreErrorsTestSuite) TestLoadError() {
	s.mock.ExpectGet("pvmhub:presets").SetErr(fmt.Errorf("connection refused"))

	_, err := s.store.Load(context.Background(), "presets")
	s.True(errors.IsUnavailable(err))
}

func (s *RedisStoreErrorsTestSuite) TestSaveError() {
	s.mock.ExpectSet("pvmhub:presets", []byte(`[]`), 0).SetErr(fmt.Errorf("READONLY"))

	err := s.store.Save(context.Background(), "presets", []byte(`[]`))
	s.True(errors.IsUnavailable(err))
}

func (s *RedisStoreErrorsTestSuite) TestSaveWritesPrefixedKey() {
	s.mock.ExpectSet("pvmhub:guides", []byte(`[{"id":"g"}]`), 0).SetVal("OK")

	s.NoError(s.store.Save(context.Background(), "guides", []byte(`[{"id":"g"}]`)))
}

type OpenTestSuite struct {
	suite.Suite
}

func TestOpenTestSuite(t *testing.T) {
	suite.Run(t, new(OpenTestSuite))
}

func (s *OpenTestSuite) TestValidation() {
	testCases := []struct {
		name string
		cfg  *blobstore.OpenConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "unknown backend", cfg: &blobstore.OpenConfig{Backend: "etcd"}},
		{name: "redis without client", cfg: &blobstore.OpenConfig{Backend: blobstore.BackendRedis}},
		{name: "postgres without dsn", cfg: &blobstore.OpenConfig{Backend: blobstore.BackendPostgres}},
		{name: "sqlite without path", cfg: &blobstore.OpenConfig{Backend: blobstore.BackendSQLite}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, _, err := blobstore.Open(context.Background(), tc.cfg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OpenTestSuite) TestOpenMemory() {
	store, closeFn, err := blobstore.Open(context.Background(), &blobstore.OpenConfig{Backend: blobstore.BackendMemory})
	s.Require().NoError(err)
	s.NotNil(store)
	s.NoError(closeFn())
}

func (s *OpenTestSuite) TestOpenSQLite() {
	path := filepath.Join(s.T().TempDir(), "open.db")
	store, closeFn, err := blobstore.Open(context.Background(), &blobstore.OpenConfig{
		Backend:    blobstore.BackendSQLite,
		SQLitePath: path,
	})
	s.Require().NoError(err)
	defer func() { s.NoError(closeFn()) }()

	s.Require().NoError(store.Save(context.Background(), "presets", []byte(`[]`)))

	// reopening the same file runs no new migrations and keeps the data
	again, err := blobstore.NewSQLite(context.Background(), path)
	s.Require().NoError(err)
	defer func() { _ = again.Close() }()

	data, err := again.Load(context.Background(), "presets")
	s.Require().NoError(err)
	s.JSONEq(`[]`, string(data))
}
