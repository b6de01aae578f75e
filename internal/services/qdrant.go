package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/config"
	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

// CandidateIndex stores one profile embedding per candidate, keyed by the
// candidate id.
type CandidateIndex interface {
	InitCollection(ctx context.Context) error
	Upsert(ctx context.Context, candidate *models.Candidate, embedding []float32) error
	SimilarTo(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantIndex(cfg config.QdrantConfig, log *zap.Logger) (CandidateIndex, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: cfg.Collection,
		vectorSize:     cfg.VectorSize,
		log:            log,
	}, nil
}

// InitCollection implements CandidateIndex.
func (q *qdrantIndex) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("✅ Qdrant collection already exists", zap.String("collection", q.collectionName))
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

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// Upsert implements CandidateIndex.
func (q *qdrantIndex) Upsert(ctx context.Context, candidate *models.Candidate, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(candidate.ID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"candidate_id": candidate.ID.String(),
			"name":         candidate.Name,
			"tier":         candidate.AssignedTier,
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

// SimilarTo implements CandidateIndex. The stored vector of id is the query.
func (q *qdrantIndex) SimilarTo(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	pointID := qdrant.NewID(id.String())

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQueryID(pointID),
		Filter: &qdrant.Filter{
			MustNot: []*qdrant.Condition{qdrant.NewHasID(pointID)},
		},
		Limit:       qdrant.PtrOf(uint64(limit)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]models.SimilarCandidate, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		results = append(results, models.SimilarCandidate{
			ID:    payload["candidate_id"].GetStringValue(),
			Score: point.GetScore(),
			Name:  payload["name"].GetStringValue(),
			Tier:  int(payload["tier"].GetIntegerValue()),
		})
	}

	return results, nil
}

// Delete implements CandidateIndex.
func (q *qdrantIndex) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points:         qdrant.NewPointsSelector(qdrant.NewID(id.String())),
	})
	if err != nil {
		return fmt.Errorf("failed to delete point: %w", err)
	}

	return nil
}
