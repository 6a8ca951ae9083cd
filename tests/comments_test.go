package tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlpost/lumos/internal/model"
	"github.com/owlpost/lumos/internal/repository"
	"github.com/owlpost/lumos/internal/service"
	"github.com/owlpost/lumos/internal/testing/fixtures"
	"github.com/owlpost/lumos/internal/testing/helpers"
	"github.com/owlpost/lumos/internal/testing/testdb"
)

/*
FEATURE: Page Comments
DOMAIN: Community

ACCEPTANCE CRITERIA:
===================

AC-COM-001: Exclusive Parent Reference
  GIVEN a comment on a character page
  WHEN it is stored
  THEN character_id is set and potion_id is absent
  AND the reverse holds for potion comments

AC-COM-002: Listing Isolation
  GIVEN comments on two different pages
  WHEN listing one page
  THEN only that page's comments appear, newest first

AC-COM-003: Author-Only Mutation
  GIVEN a stored comment
  WHEN another user edits or deletes it
  THEN the operation is rejected and nothing changes

AC-COM-004: Deletion
  GIVEN a stored comment
  WHEN its author deletes it
  THEN the record is gone and no longer listed
*/

func newCommentService(tdb *testdb.TestDB) *service.CommentService {
	return service.NewCommentService(repository.NewCommentRepository(tdb.DB))
}

func TestComments_ExclusiveParentReference(t *testing.T) {
	// AC-COM-001: Exclusive Parent Reference
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	comments := newCommentService(tdb)

	onCharacter, err := comments.Add(tdb.Ctx(), model.ForCharacter("harry-potter"), user.ID, "Expelliarmus!")
	require.NoError(t, err)
	require.NotNil(t, onCharacter.CharacterID)
	assert.Equal(t, "harry-potter", *onCharacter.CharacterID)
	assert.Nil(t, onCharacter.PotionID)
	assert.False(t, onCharacter.CreatedOn.IsZero(), "created_on should be set by the database")

	onPotion, err := comments.Add(tdb.Ctx(), model.ForPotion("polyjuice-potion"), user.ID, "Tastes awful.")
	require.NoError(t, err)
	require.NotNil(t, onPotion.PotionID)
	assert.Equal(t, "polyjuice-potion", *onPotion.PotionID)
	assert.Nil(t, onPotion.CharacterID)
}

func TestComments_ListingIsolation(t *testing.T) {
	// AC-COM-002: Listing Isolation
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	comments := newCommentService(tdb)

	first, err := comments.Add(tdb.Ctx(), model.ForCharacter("luna-lovegood"), user.ID, "first")
	require.NoError(t, err)
	second, err := comments.Add(tdb.Ctx(), model.ForCharacter("luna-lovegood"), user.ID, "second")
	require.NoError(t, err)
	_, err = comments.Add(tdb.Ctx(), model.ForPotion("amortentia"), user.ID, "elsewhere")
	require.NoError(t, err)

	listed, err := comments.List(tdb.Ctx(), model.ForCharacter("luna-lovegood"))
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest first
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	// A page with no comments yields an empty, non-nil list
	empty, err := comments.List(tdb.Ctx(), model.ForCharacter("nobody"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestComments_AuthorOnlyMutation(t *testing.T) {
	// AC-COM-003: Author-Only Mutation
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	author := f.CreateUser(t)
	intruder := f.CreateUser(t)
	comments := newCommentService(tdb)

	comment, err := comments.Add(tdb.Ctx(), model.ForCharacter("severus-snape"), author.ID, "Always.")
	require.NoError(t, err)

	_, err = comments.Update(tdb.Ctx(), comment.ID, intruder.ID, "Never.")
	assert.True(t, errors.Is(err, service.ErrNotCommentAuthor), "expected ErrNotCommentAuthor, got %v", err)

	err = comments.Remove(tdb.Ctx(), comment.ID, intruder.ID)
	assert.True(t, errors.Is(err, service.ErrNotCommentAuthor), "expected ErrNotCommentAuthor, got %v", err)

	// Content untouched
	listed, err := comments.List(tdb.Ctx(), model.ForCharacter("severus-snape"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Always.", listed[0].Content)

	// The author can edit
	updated, err := comments.Update(tdb.Ctx(), comment.ID, author.ID, "Always and forever.")
	require.NoError(t, err)
	assert.Equal(t, "Always and forever.", updated.Content)
}

func TestComments_Deletion(t *testing.T) {
	// AC-COM-004: Deletion
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)
	comments := newCommentService(tdb)

	comment, err := comments.Add(tdb.Ctx(), model.ForPotion("felix-felicis"), user.ID, "Lucky me.")
	require.NoError(t, err)

	require.NoError(t, comments.Remove(tdb.Ctx(), comment.ID, user.ID))

	helpers.AssertRecordNotExists(t, tdb.DB, "comment", comment.ID)

	listed, err := comments.List(tdb.Ctx(), model.ForPotion("felix-felicis"))
	require.NoError(t, err)
	assert.Len(t, listed, 0)

	// Deleting again reports not found
	err = comments.Remove(tdb.Ctx(), comment.ID, user.ID)
	assert.True(t, errors.Is(err, service.ErrCommentNotFound), "expected ErrCommentNotFound, got %v", err)
}
