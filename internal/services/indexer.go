package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hirelens/assessment-engine/internal/models"
	"hirelens/assessment-engine/internal/repositories"
)

// Indexer backfills profile embeddings for completed assessments so the
// search path always has vectors to query. The bookkeeping row is written
// only after a successful upsert; failures are retried on the next poll.
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	EnqueueAssessment(assessmentID uuid.UUID)
}

type indexer struct {
	assessRepo  repositories.AssessmentRepository
	embedder    EmbeddingService
	vectorStore VectorStoreService

	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewIndexer(
	assessRepo repositories.AssessmentRepository,
	embedder EmbeddingService,
	vectorStore VectorStoreService,
	concurrency int,
	pollInterval time.Duration,
) Indexer {
	return &indexer{
		assessRepo:   assessRepo,
		embedder:     embedder,
		vectorStore:  vectorStore,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Indexer.
func (w *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexer with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollUnindexed(ctx)

	log.Println("✅ Indexer started successfully")
}

// Stop implements Indexer.
func (w *indexer) Stop() {
	log.Println("🛑 Stopping indexer...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Indexer stopped")
}

// EnqueueAssessment implements Indexer.
func (w *indexer) EnqueueAssessment(assessmentID uuid.UUID) {
	select {
	case w.jobQueue <- assessmentID:
		log.Printf("📥 Assessment %s enqueued for indexing\n", assessmentID)
	case <-w.stopChan:
		log.Printf("⚠️  Indexer stopped, cannot enqueue assessment %s\n", assessmentID)
	}
}

func (w *indexer) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Indexer worker #%d stopped\n", workerID)
			return
		case assessmentID := <-w.jobQueue:
			if err := w.indexAssessment(ctx, assessmentID); err != nil {
				log.Printf("❌ Worker #%d failed to index assessment %s: %v\n", workerID, assessmentID, err)
			} else {
				log.Printf("✅ Worker #%d indexed assessment %s\n", workerID, assessmentID)
			}
		}
	}
}

func (w *indexer) pollUnindexed(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting unindexed assessments poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Unindexed assessments poller stopped")
			return
		case <-ticker.C:
			pending, err := w.assessRepo.FindCompletedWithoutEmbedding(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch unindexed assessments: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d assessments without embeddings\n", len(pending))
			}

			for _, assessment := range pending {
				w.EnqueueAssessment(assessment.ID)
			}
		}
	}
}

func (w *indexer) indexAssessment(ctx context.Context, assessmentID uuid.UUID) error {
	// A queued ID may have been indexed by another worker already.
	exists, err := w.assessRepo.HasEmbedding(assessmentID)
	if err != nil {
		return fmt.Errorf("failed to check embedding: %w", err)
	}
	if exists {
		return nil
	}

	assessment, err := w.assessRepo.FindByID(assessmentID)
	if err != nil {
		return fmt.Errorf("failed to load assessment: %w", err)
	}

	if assessment.Status != models.StatusCompleted {
		return fmt.Errorf("assessment %s is %s, not completed", assessmentID, assessment.Status)
	}

	profileText := BuildProfileText(assessment)
	if profileText == "" {
		return fmt.Errorf("assessment %s has no profile content to embed", assessmentID)
	}

	embedding, err := w.embedder.GenerateEmbedding(ctx, profileText)
	if err != nil {
		return fmt.Errorf("failed to generate profile embedding: %w", err)
	}

	if err := w.vectorStore.UpsertProfile(ctx, assessmentID, profileText, embedding); err != nil {
		return fmt.Errorf("failed to upsert profile vector: %w", err)
	}

	record := &models.CandidateEmbedding{
		ID:                uuid.New(),
		VideoAssessmentID: assessmentID,
		Model:             w.embedder.Model(),
		Dims:              w.embedder.Dims(),
		CreatedAt:         time.Now(),
	}

	if err := w.assessRepo.CreateEmbeddingRecord(record); err != nil {
		return fmt.Errorf("failed to record embedding: %w", err)
	}

	return nil
}
