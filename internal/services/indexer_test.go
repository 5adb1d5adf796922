package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/assessment-engine/internal/models"
)

func newIndexerFixture(assessments []models.VideoAssessment, store *fakeVectorStore) (*indexer, *fakeAssessmentRepo) {
	repo := &fakeAssessmentRepo{assessments: assessments}
	w := NewIndexer(
		repo,
		&fakeEmbedder{vector: make([]float32, embeddingDims)},
		store,
		1,
		time.Minute,
	).(*indexer)
	return w, repo
}

func TestIndexAssessment_WritesRecordAfterUpsert(t *testing.T) {
	assessment := completedAssessment("Ada", map[string]*int{"technical": intPtr(4)})
	store := &fakeVectorStore{}
	w, repo := newIndexerFixture([]models.VideoAssessment{assessment}, store)

	err := w.indexAssessment(context.Background(), assessment.ID)
	require.NoError(t, err)

	require.Len(t, store.upserts, 1)
	assert.Equal(t, assessment.ID, store.upserts[0])

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, assessment.ID, record.VideoAssessmentID)
	assert.Equal(t, "test-embedding", record.Model)
	assert.Equal(t, embeddingDims, record.Dims)
}

func TestIndexAssessment_NoRecordWhenUpsertFails(t *testing.T) {
	assessment := completedAssessment("Ada", map[string]*int{"technical": intPtr(4)})
	store := &fakeVectorStore{upsertErr: errors.New("qdrant unavailable")}
	w, repo := newIndexerFixture([]models.VideoAssessment{assessment}, store)

	err := w.indexAssessment(context.Background(), assessment.ID)
	require.Error(t, err)

	// The bookkeeping row must only exist once the vector does, otherwise
	// the next poll would skip an assessment that was never indexed.
	assert.Empty(t, repo.created)
}

func TestIndexAssessment_SkipsAlreadyIndexed(t *testing.T) {
	assessment := completedAssessment("Ada", map[string]*int{"technical": intPtr(4)})
	store := &fakeVectorStore{}
	w, repo := newIndexerFixture([]models.VideoAssessment{assessment}, store)
	repo.hasEmbedding = true

	err := w.indexAssessment(context.Background(), assessment.ID)
	require.NoError(t, err)

	assert.Empty(t, store.upserts)
	assert.Empty(t, repo.created)
}

func TestIndexAssessment_RejectsNonCompleted(t *testing.T) {
	assessment := completedAssessment("Ada", map[string]*int{"technical": intPtr(4)})
	assessment.Status = models.StatusProcessing
	store := &fakeVectorStore{}
	w, repo := newIndexerFixture([]models.VideoAssessment{assessment}, store)

	err := w.indexAssessment(context.Background(), assessment.ID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not completed")

	assert.Empty(t, store.upserts)
	assert.Empty(t, repo.created)
}

func TestIndexAssessment_RejectsEmptyProfile(t *testing.T) {
	assessment := completedAssessment("", nil)
	assessment.Summary = ""
	store := &fakeVectorStore{}
	w, repo := newIndexerFixture([]models.VideoAssessment{assessment}, store)

	err := w.indexAssessment(context.Background(), assessment.ID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no profile content")

	assert.Empty(t, store.upserts)
	assert.Empty(t, repo.created)
}
