package weatherquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const DefaultHistoryLimit = 20

type Repository interface {
	LogWeatherQuery(ctx context.Context, query WeatherQuery) error
	GetRecentWeatherQuery(ctx context.Context, location string) (*WeatherQuery, error)
	RecentQueries(ctx context.Context, limit int) ([]WeatherQuery, error)
}

type WeatherSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db}
}

func (r *WeatherSQLRepository) LogWeatherQuery(ctx context.Context, query WeatherQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(&query).Error
}

func (r *WeatherSQLRepository) GetRecentWeatherQuery(ctx context.Context, location string) (*WeatherQuery, error) {
	var query WeatherQuery
	err := r.db.WithContext(ctx).Where("query = ?", location).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *WeatherSQLRepository) RecentQueries(ctx context.Context, limit int) ([]WeatherQuery, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var queries []WeatherQuery
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
