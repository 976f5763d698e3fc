package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/job"
)

type JobRepo interface {
	CreateJob(j *job.BulkJob) error
	GetJobByID(id uint) (job.BulkJob, error)
	GetJobByIdempotencyKey(key string) (job.BulkJob, error)
	GetQueuedJobs() ([]job.BulkJob, error)
	UpdateJob(j *job.BulkJob) error
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{db: db}
}

func (r *DBJobRepo) CreateJob(j *job.BulkJob) error {
	return r.db.Create(j).Error
}

func (r *DBJobRepo) GetJobByID(id uint) (job.BulkJob, error) {
	var j job.BulkJob
	err := r.db.First(&j, id).Error
	return j, err
}

func (r *DBJobRepo) GetJobByIdempotencyKey(key string) (job.BulkJob, error) {
	var j job.BulkJob
	err := r.db.Where("idempotency_key = ?", key).First(&j).Error
	return j, err
}

func (r *DBJobRepo) GetQueuedJobs() ([]job.BulkJob, error) {
	var jobs []job.BulkJob
	err := r.db.Where("status = ?", job.StatusQueued).Order("id").Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) UpdateJob(j *job.BulkJob) error {
	return r.db.Save(j).Error
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{db: tx}
}
