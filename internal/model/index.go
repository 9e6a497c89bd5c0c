package model

import (
	"time"

	"github.com/yockii/markslide/pkg/logger"
	"gorm.io/gorm"
)

type Model interface {
	TableComment() string
	GetID() uint64
}

type BaseModel struct {
	ID        uint64    `json:"id,string" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt,omitzero" gorm:"type:timestamp;not null"`
}

func (b *BaseModel) TableComment() string {
	return "基础模型"
}

func (b *BaseModel) GetID() uint64 {
	return b.ID
}

var models []Model

func AutoMigrate(db *gorm.DB) {
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("自动迁移表失败", logger.F("error", err))
		}
	}
}
