package guides_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/entities/guide"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/pvm-hub/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/pvm-hub/internal/repositories/guides"
	"github.com/KirkDiggler/pvm-hub/internal/testutils"
)

type BlobRepositoryTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	idGen *idgenmock.MockGenerator
	clock *clock.Manual
	store blobstore.Store
	repo  guides.Repository
	ctx   context.Context
	start time.Time
}

func TestBlobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BlobRepositoryTestSuite))
}

func (s *BlobRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.idGen = idgenmock.NewMockGenerator(s.ctrl)
	s.start = time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	s.clock = clock.NewManual(s.start)
	s.store = blobstore.NewMemory()
	s.ctx = context.Background()

	var err error
	s.repo, err = guides.NewBlobRepository(&guides.Config{
		Store:       s.store,
		IDGenerator: s.idGen,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
}

func (s *BlobRepositoryTestSuite) TestConfigValidation() {
	_, err := guides.NewBlobRepository(&guides.Config{Store: s.store})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BlobRepositoryTestSuite) TestCreateStampsFields() {
	s.idGen.EXPECT().Generate().Return("guide-1")

	out, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: testutils.TelosGuide()})
	s.Require().NoError(err)

	s.True(out.Created)
	s.Equal("guide-1", out.Guide.ID)
	s.Equal(guide.DefaultAuthor, out.Guide.Author)
	s.Equal("2024-06-01T18:30:00Z", out.Guide.CreatedAt)
	s.Equal(out.Guide.CreatedAt, out.Guide.UpdatedAt)
}

func (s *BlobRepositoryTestSuite) TestCreateKeepsGivenAuthor() {
	s.idGen.EXPECT().Generate().Return("guide-1")

	g := testutils.TelosGuide()
	g.Author = "Maikeru"
	out, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: g})
	s.Require().NoError(err)
	s.Equal("Maikeru", out.Guide.Author)
}

func (s *BlobRepositoryTestSuite) TestUpdateTouchesOnlyEditableFields() {
	s.idGen.EXPECT().Generate().Return("guide-1")
	created, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: testutils.TelosGuide()})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	edit := guide.Guide{
		ID:        "guide-1",
		Title:     "Telos 4000%",
		Boss:      "Telos",
		Content:   "## Gear\n",
		Author:    "someone else",
		CreatedAt: "1999-01-01T00:00:00Z",
	}
	out, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: edit})
	s.Require().NoError(err)

	s.False(out.Created)
	s.Equal("Telos 4000%", out.Guide.Title)
	s.Equal("## Gear\n", out.Guide.Content)
	s.Equal(guide.DefaultAuthor, out.Guide.Author)
	s.Equal(created.Guide.CreatedAt, out.Guide.CreatedAt)
	s.Equal("2024-06-01T19:30:00Z", out.Guide.UpdatedAt)

	got, err := s.repo.Get(s.ctx, guides.GetInput{ID: "guide-1"})
	s.Require().NoError(err)
	s.Equal(out.Guide, got.Guide)
}

func (s *BlobRepositoryTestSuite) TestUpdateUnknownIsNotFound() {
	_, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: guide.Guide{ID: "nope", Title: "t"}})
	s.True(errors.IsNotFound(err))
}

func (s *BlobRepositoryTestSuite) TestListAndDelete() {
	gomock.InOrder(
		s.idGen.EXPECT().Generate().Return("g1"),
		s.idGen.EXPECT().Generate().Return("g2"),
	)
	for i := 0; i < 2; i++ {
		_, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: testutils.TelosGuide()})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, guides.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Guides, 2)
	s.Equal("g1", list.Guides[0].ID)
	s.Equal("g2", list.Guides[1].ID)

	_, err = s.repo.Delete(s.ctx, guides.DeleteInput{ID: "g1"})
	s.Require().NoError(err)

	list, err = s.repo.List(s.ctx, guides.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Guides, 1)
	s.Equal("g2", list.Guides[0].ID)

	_, err = s.repo.Delete(s.ctx, guides.DeleteInput{ID: "g1"})
	s.True(errors.IsNotFound(err))
}

func (s *BlobRepositoryTestSuite) TestPersistedLayout() {
	s.idGen.EXPECT().Generate().Return("guide-1")
	_, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: testutils.TelosGuide()})
	s.Require().NoError(err)

	raw, err := s.store.Load(s.ctx, blobstore.NamespaceGuides)
	s.Require().NoError(err)
	s.JSONEq(`[{
		"id": "guide-1",
		"title": "Telos 100% enrage",
		"boss": "Telos",
		"content": "## Recommended Gear\nDrygores.\n## Example Rotation\nBerserk first.\n",
		"author": "User",
		"createdAt": "2024-06-01T18:30:00Z",
		"updatedAt": "2024-06-01T18:30:00Z"
	}]`, string(raw))
}

func (s *BlobRepositoryTestSuite) TestSurvivesRepositoryRestart() {
	s.idGen.EXPECT().Generate().Return("guide-1")
	_, err := s.repo.Save(s.ctx, guides.SaveInput{Guide: testutils.TelosGuide()})
	s.Require().NoError(err)

	reopened, err := guides.NewBlobRepository(&guides.Config{
		Store:       s.store,
		IDGenerator: s.idGen,
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	got, err := reopened.Get(s.ctx, guides.GetInput{ID: "guide-1"})
	s.Require().NoError(err)
	s.Equal("Telos", got.Guide.Boss)
}
