package models

import "time"

// Follower is a directed follow edge: FollowerID follows FollowedID.
// The ordered pair is the primary key, so at most one edge can exist per pair.
type Follower struct {
	FollowerID uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint      `json:"followed_id" gorm:"primaryKey;autoIncrement:false"`
	FollowDate time.Time `json:"follow_date" gorm:"autoCreateTime"`
	Follower   User      `json:"-" gorm:"foreignKey:FollowerID"`
	Followed   User      `json:"-" gorm:"foreignKey:FollowedID"`
}
