package repository

import (
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"
	domainRepo "github.com/thien1805/scrum-to-your-doctor/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Order("created_at DESC").Limit(200).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
