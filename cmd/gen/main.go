// Command gen regenerates the typed gorm/gen query helpers from the persistence models.
package main

import (
	"vidtube/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.VideoModel{},
		model.CommentModel{},
		model.LikeModel{},
		model.TweetModel{},
		model.PlaylistModel{},
		model.PlaylistVideoModel{},
		model.SubscriptionModel{},
		model.WatchHistoryModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
