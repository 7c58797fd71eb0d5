package repositories

import (
	"fmt"

	"github.com/journalapp/backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotFollowing is returned when deleting a follow edge that does not exist
var ErrNotFollowing = fmt.Errorf("follow relationship not found")

// FollowerRepository defines the interface for follow-edge data operations
type FollowerRepository interface {
	CreateFollow(follow *models.Follower) error
	DeleteFollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowersCount(userID uint) (int64, error)
}

// PostgresFollowerRepository implements FollowerRepository for PostgreSQL
type PostgresFollowerRepository struct {
	db *gorm.DB
}

// NewPostgresFollowerRepository creates a new PostgresFollowerRepository
func NewPostgresFollowerRepository(db *gorm.DB) *PostgresFollowerRepository {
	return &PostgresFollowerRepository{db: db}
}

func (r *PostgresFollowerRepository) CreateFollow(follow *models.Follower) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowerRepository) DeleteFollow(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (r *PostgresFollowerRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follower{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowersCount counts the incoming follow edges of a user
func (r *PostgresFollowerRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follower{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}
