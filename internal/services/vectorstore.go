package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

const profileDocType = "candidate_profile"

// VectorStoreService holds one 768-d cosine collection of candidate
// profile vectors, one point per video assessment.
type VectorStoreService interface {
	InitCollection() error
	UpsertProfile(ctx context.Context, assessmentID uuid.UUID, text string, embedding []float32) error
	SearchAssessments(ctx context.Context, queryEmbedding []float32, scoreThreshold float64, limit int) ([]AssessmentMatch, error)
	DeleteProfile(ctx context.Context, assessmentID uuid.UUID) error
}

// AssessmentMatch is one similarity hit. Similarity is the cosine score in
// [0, 1] as reported by the store, higher is closer.
type AssessmentMatch struct {
	VideoAssessmentID uuid.UUID
	Similarity        float64
}

type vectorStoreService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewVectorStoreService(urlStr, apiKey, collectionName string) (VectorStoreService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &vectorStoreService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     embeddingDims,
	}, nil
}

// InitCollection implements VectorStoreService.
func (q *vectorStoreService) InitCollection() error {
	ctx := context.Background()

	// Check if collection exists
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertProfile implements VectorStoreService. The point ID is the
// assessment UUID itself, so re-indexing an assessment replaces its vector
// instead of accumulating duplicates.
func (q *vectorStoreService) UpsertProfile(ctx context.Context, assessmentID uuid.UUID, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(assessmentID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"video_assessment_id": assessmentID.String(),
			"doc_type":            profileDocType,
			"text":                text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchAssessments implements VectorStoreService. Results come back in
// descending similarity order; hits at or below the threshold are dropped
// (the threshold is exclusive).
func (q *vectorStoreService) SearchAssessments(ctx context.Context, queryEmbedding []float32, scoreThreshold float64, limit int) ([]AssessmentMatch, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("doc_type", profileDocType),
		},
	}

	threshold := float32(scoreThreshold)
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		ScoreThreshold: &threshold,
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var matches []AssessmentMatch
	for _, point := range searchResult {
		// Qdrant's threshold is inclusive; ours is strictly greater-than.
		if float64(point.Score) <= scoreThreshold {
			continue
		}

		idValue, ok := point.Payload["video_assessment_id"]
		if !ok {
			continue
		}

		idStr, ok := idValue.GetKind().(*qdrant.Value_StringValue)
		if !ok {
			continue
		}

		assessmentID, err := uuid.Parse(idStr.StringValue)
		if err != nil {
			log.Printf("⚠️  Skipping point with malformed assessment ID %q: %v\n", idStr.StringValue, err)
			continue
		}

		matches = append(matches, AssessmentMatch{
			VideoAssessmentID: assessmentID,
			Similarity:        float64(point.Score),
		})
	}

	return matches, nil
}

// DeleteProfile implements VectorStoreService. It completes the point
// lifecycle for callers that retract an assessment (candidate withdrawal,
// data removal requests); nothing in the API surface triggers it yet.
func (q *vectorStoreService) DeleteProfile(ctx context.Context, assessmentID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("video_assessment_id", assessmentID.String()),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
