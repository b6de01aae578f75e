package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Re-embed every candidate profile into the similarity index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cfg, db, err := openDatabase(log)
		if err != nil {
			return err
		}
		if cfg.Gemini.APIKey == "" || cfg.Qdrant.URL == "" {
			return errors.New("GEMINI_API_KEY and QDRANT_URL must be set to reindex")
		}

		gemini, err := services.NewGeminiService(ctx, cfg.Gemini, log)
		if err != nil {
			return err
		}
		index, err := services.NewQdrantIndex(cfg.Qdrant, log)
		if err != nil {
			return err
		}
		if err := index.InitCollection(ctx); err != nil {
			return err
		}

		repo := repositories.NewCandidateRepository(db)
		similarity := services.NewSimilarityService(repo, gemini, index)

		log.Info("🚀 Starting candidate reindex")
		indexed, failed := 0, 0
		err = repo.EachBatch(viper.GetInt("reindex-batch"), func(batch []models.Candidate) error {
			for i := range batch {
				if err := similarity.Index(ctx, &batch[i]); err != nil {
					failed++
					log.Warn("⚠️ Failed to index candidate",
						zap.String("candidate_id", batch[i].ID.String()),
						zap.Error(err))
					continue
				}
				indexed++
			}
			log.Info("📄 Batch indexed", zap.Int("indexed", indexed), zap.Int("failed", failed))
			return nil
		})
		if err != nil {
			return err
		}

		log.Info("🎉 Reindex complete", zap.Int("indexed", indexed), zap.Int("failed", failed))
		return nil
	},
}

func init() {
	reindexCmd.Flags().Int("batch", 50, "candidates fetched per batch")
	_ = viper.BindPFlag("reindex-batch", reindexCmd.Flags().Lookup("batch"))
}
